package gnome

import (
	"fmt"

	"go.uber.org/zap"

	"edider/internal/domain"
)

// Provider reports monitors from Mutter's DisplayConfig interface. Used on
// GNOME Wayland sessions where the RandR extension is not reachable.
type Provider struct {
	logger *zap.Logger
	client DBusClient
}

// NewProvider connects to the session bus. The D-Bus connection is held
// for the provider's lifetime; Close releases it.
func NewProvider(logger *zap.Logger) (*Provider, error) {
	client, err := NewStdDBusClient()
	if err != nil {
		return nil, fmt.Errorf("session bus connection failed: %w", err)
	}
	return &Provider{logger: logger, client: client}, nil
}

// Backend returns "gnome"
func (p *Provider) Backend() string {
	return "gnome"
}

// Close closes the D-Bus connection
func (p *Provider) Close() error {
	return p.client.Close()
}

// Monitors takes one snapshot of the compositor's display state and builds
// a monitor per reported physical monitor. The snapshot does not observe
// later configuration changes; call again for a fresh view.
func (p *Provider) Monitors() ([]domain.Monitor, error) {
	serial, states, logical, err := p.client.CurrentState()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Display state fetched",
		zap.Uint32("serial", serial),
		zap.Int("monitors", len(states)))

	monitors := make([]domain.Monitor, 0, len(states))
	for _, st := range states {
		monitors = append(monitors, newMonitor(st, logical))
	}
	return monitors, nil
}

// Monitor is a point-in-time view of one physical monitor. A monitor not
// assigned to any logical monitor is off.
type Monitor struct {
	state   MonitorState
	logical *LogicalMonitorState // nil when the monitor is off
}

func newMonitor(st MonitorState, logical []LogicalMonitorState) *Monitor {
	m := &Monitor{state: st}
	for i := range logical {
		for _, spec := range logical[i].Monitors {
			if spec.Connector == st.Spec.Connector {
				m.logical = &logical[i]
			}
		}
	}
	return m
}

// OutputName returns the connector name, e.g. "DP-1"
func (m *Monitor) OutputName() (string, error) {
	return m.state.Spec.Connector, nil
}

// IsPrimary reports whether the owning logical monitor is the primary one.
func (m *Monitor) IsPrimary() (bool, error) {
	return m.logical != nil && m.logical.Primary, nil
}

// Status is StatusOff when no logical monitor includes this connector.
func (m *Monitor) Status() (domain.Status, error) {
	if m.logical == nil {
		return domain.StatusOff, nil
	}
	return domain.StatusOn, nil
}

// Geometry combines the logical monitor's position with the current mode's
// pixel size; all zeros for an inactive monitor.
func (m *Monitor) Geometry() (domain.Geometry, error) {
	cur := m.modeWithFlag("is-current")
	if m.logical == nil || cur == nil {
		return domain.Geometry{}, nil
	}
	return domain.Geometry{
		X:      int(m.logical.X),
		Y:      int(m.logical.Y),
		Width:  int(cur.Width),
		Height: int(cur.Height),
	}, nil
}

// Resolution returns the preferred mode's dimensions.
func (m *Monitor) Resolution() (domain.Resolution, error) {
	pref := m.modeWithFlag("is-preferred")
	if pref == nil {
		return domain.Resolution{}, fmt.Errorf("no preferred mode reported for %s", m.state.Spec.Connector)
	}
	return domain.Resolution{Width: int(pref.Width), Height: int(pref.Height)}, nil
}

// EDID is not exposed by DisplayConfig.
func (m *Monitor) EDID() ([]byte, error) {
	return nil, domain.ErrNoEDID
}

func (m *Monitor) String() string {
	return domain.Format(m)
}

func (m *Monitor) modeWithFlag(flag string) *MonitorMode {
	for i := range m.state.Modes {
		v, ok := m.state.Modes[i].Properties[flag]
		if !ok {
			continue
		}
		if set, ok := v.Value().(bool); ok && set {
			return &m.state.Modes[i]
		}
	}
	return nil
}
