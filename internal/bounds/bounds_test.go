package bounds

import (
	"errors"
	"image"
	"testing"

	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"edider/internal/domain"
)

func TestMonitorFromBounds(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		bounds      image.Rectangle
		wantName    string
		wantPrimary bool
		wantGeom    domain.Geometry
	}{
		{
			name:        "Primary display at origin",
			index:       0,
			bounds:      image.Rect(0, 0, 1920, 1080),
			wantName:    "display-0",
			wantPrimary: true,
			wantGeom:    domain.Geometry{X: 0, Y: 0, Width: 1920, Height: 1080},
		},
		{
			name:        "Secondary display offset right",
			index:       1,
			bounds:      image.Rect(1920, 0, 4480, 1440),
			wantName:    "display-1",
			wantPrimary: false,
			wantGeom:    domain.Geometry{X: 1920, Y: 0, Width: 2560, Height: 1440},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mon := &Monitor{index: tt.index, bounds: tt.bounds}

			name, _ := mon.OutputName()
			if name != tt.wantName {
				t.Errorf("OutputName() = %q, want %q", name, tt.wantName)
			}

			primary, _ := mon.IsPrimary()
			if primary != tt.wantPrimary {
				t.Errorf("IsPrimary() = %v, want %v", primary, tt.wantPrimary)
			}

			status, _ := mon.Status()
			if status != domain.StatusOn {
				t.Errorf("Status() = %q, want %q", status, domain.StatusOn)
			}

			geom, _ := mon.Geometry()
			if geom != tt.wantGeom {
				t.Errorf("Geometry() = %+v, want %+v", geom, tt.wantGeom)
			}

			res, _ := mon.Resolution()
			if res.Width != tt.wantGeom.Width || res.Height != tt.wantGeom.Height {
				t.Errorf("Resolution() = %+v, want bounds size", res)
			}

			if _, err := mon.EDID(); !errors.Is(err, domain.ErrNoEDID) {
				t.Errorf("EDID() error = %v, want ErrNoEDID", err)
			}
		})
	}
}

func TestProviderMonitors(t *testing.T) {
	if screenshot.NumActiveDisplays() <= 0 {
		t.Skip("no active displays on this system")
	}

	p := NewProvider(zap.NewNop())
	monitors, err := p.Monitors()
	if err != nil {
		t.Fatalf("Monitors() failed: %v", err)
	}
	for i, mon := range monitors {
		name, _ := mon.OutputName()
		geom, _ := mon.Geometry()
		t.Logf("Monitor %d: %s %+v", i, name, geom)
	}
}
