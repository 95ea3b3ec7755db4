package xrandr

import (
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"edider/internal/domain"
	"edider/internal/xrandr/mocks"
)

// TestMonitorStatus: "off" iff the resolved CRTC id is 0.
func TestMonitorStatus(t *testing.T) {
	tests := []struct {
		name string
		info *domain.OutputInfo
		want domain.Status
	}{
		{
			name: "No controller bound means off",
			info: &domain.OutputInfo{Name: "HDMI-1", Crtc: 0},
			want: domain.StatusOff,
		},
		{
			name: "Bound controller means on",
			info: &domain.OutputInfo{Name: "HDMI-1", Crtc: 42},
			want: domain.StatusOn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conn := mocks.NewMockConn(ctrl)
			conn.EXPECT().OutputInfo(domain.OutputID(7)).Return(tt.info, nil)
			if tt.info.Crtc == 0 {
				conn.EXPECT().CrtcInfo(domain.CrtcID(0)).
					Return(nil, fmt.Errorf("BadCrtc"))
			} else {
				conn.EXPECT().CrtcInfo(tt.info.Crtc).
					Return(&domain.CRTCInfo{X: 0, Y: 0, Width: 1920, Height: 1080, Mode: 20}, nil)
			}
			conn.EXPECT().Close().Return(nil).AnyTimes()

			mon := NewMonitor(7, 0, connectTo(conn))
			status, err := mon.Status()
			if err != nil {
				t.Fatalf("Status() failed: %v", err)
			}
			if status != tt.want {
				t.Errorf("Status() = %q, want %q", status, tt.want)
			}
		})
	}
}

// TestMonitorGeometry: inactive outputs report all zeros, active ones the
// exact server-reported rectangle.
func TestMonitorGeometry(t *testing.T) {
	tests := []struct {
		name     string
		info     *domain.OutputInfo
		crtcInfo *domain.CRTCInfo // nil means the CRTC query fails
		want     domain.Geometry
	}{
		{
			name: "Inactive output defaults to zeros",
			info: &domain.OutputInfo{Name: "HDMI-1", Crtc: 0},
			want: domain.Geometry{},
		},
		{
			name:     "Active output reports exact geometry",
			info:     &domain.OutputInfo{Name: "HDMI-1", Crtc: 42},
			crtcInfo: &domain.CRTCInfo{X: 1920, Y: 0, Width: 2560, Height: 1440, Mode: 20},
			want:     domain.Geometry{X: 1920, Y: 0, Width: 2560, Height: 1440},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conn := mocks.NewMockConn(ctrl)
			conn.EXPECT().OutputInfo(domain.OutputID(7)).Return(tt.info, nil)
			if tt.crtcInfo != nil {
				conn.EXPECT().CrtcInfo(tt.info.Crtc).Return(tt.crtcInfo, nil)
			} else {
				conn.EXPECT().CrtcInfo(tt.info.Crtc).
					Return(nil, fmt.Errorf("BadCrtc"))
			}
			conn.EXPECT().Close().Return(nil).AnyTimes()

			mon := NewMonitor(7, 0, connectTo(conn))
			geom, err := mon.Geometry()
			if err != nil {
				t.Fatalf("Geometry() failed: %v", err)
			}
			if geom != tt.want {
				t.Errorf("Geometry() = %+v, want %+v", geom, tt.want)
			}
		})
	}
}

// TestMonitorIsPrimary: the primary check is live, so a server-side change
// between two calls changes the result.
func TestMonitorIsPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	gomock.InOrder(
		conn.EXPECT().PrimaryOutput().Return(domain.OutputID(7), nil),
		conn.EXPECT().PrimaryOutput().Return(domain.OutputID(9), nil),
	)
	conn.EXPECT().Close().Return(nil).Times(2)

	mon := NewMonitor(7, 0, connectTo(conn))

	primary, err := mon.IsPrimary()
	if err != nil {
		t.Fatalf("IsPrimary() failed: %v", err)
	}
	if !primary {
		t.Error("Expected primary on first call")
	}

	primary, err = mon.IsPrimary()
	if err != nil {
		t.Fatalf("IsPrimary() failed: %v", err)
	}
	if primary {
		t.Error("Expected not primary after the server moved the designation")
	}
}

// TestMonitorString renders the one-line report form.
func TestMonitorString(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	conn.EXPECT().OutputInfo(domain.OutputID(7)).
		Return(&domain.OutputInfo{Name: "HDMI-1", NumPreferred: 1, Modes: []domain.ModeID{20}}, nil)
	conn.EXPECT().ScreenResources().
		Return(&domain.ScreenResources{Modes: []domain.Mode{{ID: 20, Width: 1920, Height: 1080}}}, nil)
	conn.EXPECT().Close().Return(nil).AnyTimes()

	mon := NewMonitor(7, 0, connectTo(conn))
	want := "HDMI-1\t->\t1920x1080"
	if got := mon.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestConnectedOutputs: only outputs with connection state 0 survive the
// filter, in server order.
func TestConnectedOutputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	conn.EXPECT().ScreenResources().
		Return(&domain.ScreenResources{Outputs: []domain.OutputID{1, 2, 3}}, nil)
	conn.EXPECT().OutputInfo(domain.OutputID(1)).
		Return(&domain.OutputInfo{Name: "eDP-1", Connection: domain.Connected}, nil)
	conn.EXPECT().OutputInfo(domain.OutputID(2)).
		Return(&domain.OutputInfo{Name: "HDMI-1", Connection: domain.Disconnected}, nil)
	conn.EXPECT().OutputInfo(domain.OutputID(3)).
		Return(&domain.OutputInfo{Name: "DP-1", Connection: domain.ConnectionUnknown}, nil)
	conn.EXPECT().Close().Return(nil).Times(1)

	ids, err := ConnectedOutputs(connectTo(conn), 0)
	if err != nil {
		t.Fatalf("ConnectedOutputs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("ConnectedOutputs = %v, want [1]", ids)
	}
}

// TestProviderMonitors: one facade per connected output, order preserved,
// and name/status lookups must not fail for enumerated outputs.
func TestProviderMonitors(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConn(ctrl)
	conn.EXPECT().ScreenResources().
		Return(&domain.ScreenResources{Outputs: []domain.OutputID{4, 5}}, nil)
	conn.EXPECT().OutputInfo(domain.OutputID(4)).
		Return(&domain.OutputInfo{Name: "eDP-1", Connection: domain.Connected, Crtc: 42}, nil).
		AnyTimes()
	conn.EXPECT().OutputInfo(domain.OutputID(5)).
		Return(&domain.OutputInfo{Name: "HDMI-1", Connection: domain.Connected, Crtc: 0}, nil).
		AnyTimes()
	conn.EXPECT().CrtcInfo(domain.CrtcID(42)).
		Return(&domain.CRTCInfo{Width: 1920, Height: 1080, Mode: 20}, nil).
		AnyTimes()
	conn.EXPECT().CrtcInfo(domain.CrtcID(0)).
		Return(nil, fmt.Errorf("BadCrtc")).
		AnyTimes()
	conn.EXPECT().Close().Return(nil).AnyTimes()

	p := &Provider{logger: zap.NewNop(), screen: 0, connect: connectTo(conn)}

	monitors, err := p.Monitors()
	if err != nil {
		t.Fatalf("Monitors() failed: %v", err)
	}
	if len(monitors) != 2 {
		t.Fatalf("Expected 2 monitors, got %d", len(monitors))
	}

	wantNames := []string{"eDP-1", "HDMI-1"}
	wantStatus := []domain.Status{domain.StatusOn, domain.StatusOff}
	for i, mon := range monitors {
		name, err := mon.OutputName()
		if err != nil {
			t.Fatalf("OutputName() failed for monitor %d: %v", i, err)
		}
		if name != wantNames[i] {
			t.Errorf("Monitor %d name = %q, want %q", i, name, wantNames[i])
		}
		status, err := mon.Status()
		if err != nil {
			t.Fatalf("Status() failed for monitor %d: %v", i, err)
		}
		if status != wantStatus[i] {
			t.Errorf("Monitor %d status = %q, want %q", i, status, wantStatus[i])
		}
	}
}
