package xrandr

import (
	"go.uber.org/zap"

	"edider/internal/domain"
)

// Monitor adapts an Output accessor to the domain reporting contract.
type Monitor struct {
	out *Output
	res *domain.Resolution // preferred resolution, derived once
}

// NewMonitor creates a monitor facade for the given output id.
func NewMonitor(id domain.OutputID, screen int, connect ConnectFunc) *Monitor {
	return &Monitor{out: NewOutput(id, screen, connect)}
}

// OutputName returns the connector name, e.g. "HDMI-1"
func (m *Monitor) OutputName() (string, error) {
	return m.out.Name()
}

// IsPrimary consults the server's live primary designation on every call.
func (m *Monitor) IsPrimary() (bool, error) {
	primary, err := m.out.PrimaryOutput()
	if err != nil {
		return false, err
	}
	return m.out.ID() == primary, nil
}

// Status is StatusOff exactly when no controller is bound to the output.
func (m *Monitor) Status() (domain.Status, error) {
	crtc, err := m.out.CRTC()
	if err != nil {
		return "", err
	}
	if crtc.ID == 0 {
		return domain.StatusOff, nil
	}
	return domain.StatusOn, nil
}

// Geometry returns the output's position and size. An inactive output
// reports all zeros.
func (m *Monitor) Geometry() (domain.Geometry, error) {
	crtc, err := m.out.CRTC()
	if err != nil {
		return domain.Geometry{}, err
	}
	if crtc.Info == nil {
		return domain.Geometry{}, nil
	}
	return domain.Geometry{
		X:      crtc.Info.X,
		Y:      crtc.Info.Y,
		Width:  crtc.Info.Width,
		Height: crtc.Info.Height,
	}, nil
}

// Resolution returns the preferred mode's dimensions, derived once and
// stored on the facade.
func (m *Monitor) Resolution() (domain.Resolution, error) {
	if m.res != nil {
		return *m.res, nil
	}
	mode, err := m.out.PreferredMode()
	if err != nil {
		return domain.Resolution{}, err
	}
	m.res = &domain.Resolution{Width: mode.Width, Height: mode.Height}
	return *m.res, nil
}

// EDID delegates to the accessor's cached EDID read.
func (m *Monitor) EDID() ([]byte, error) {
	return m.out.EDID()
}

func (m *Monitor) String() string {
	return domain.Format(m)
}

// Provider enumerates monitors through the X RandR extension.
type Provider struct {
	logger  *zap.Logger
	screen  int
	connect ConnectFunc
}

// NewProvider creates the RandR-backed provider for the configured screen.
func NewProvider(logger *zap.Logger, cfg domain.Config) *Provider {
	return &Provider{logger: logger, screen: cfg.Screen(), connect: Connect}
}

// Backend returns "x11"
func (p *Provider) Backend() string {
	return "x11"
}

// Monitors builds one facade per connected output, enumeration order
// preserved.
func (p *Provider) Monitors() ([]domain.Monitor, error) {
	ids, err := ConnectedOutputs(p.connect, p.screen)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Enumerated connected outputs",
		zap.Int("screen", p.screen),
		zap.Int("count", len(ids)))

	monitors := make([]domain.Monitor, 0, len(ids))
	for _, id := range ids {
		monitors = append(monitors, NewMonitor(id, p.screen, p.connect))
	}
	return monitors, nil
}

// Close is a no-op: every query opens and releases its own scope.
func (p *Provider) Close() error {
	return nil
}
