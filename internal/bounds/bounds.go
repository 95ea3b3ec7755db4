package bounds

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"edider/internal/domain"
)

// Provider reports monitors from the display bounds the OS exposes.
// Last-resort backend for sessions where neither RandR nor DisplayConfig
// is reachable; it carries no connector names, modes or EDID, only
// geometry.
type Provider struct {
	logger *zap.Logger
}

// NewProvider creates the bounds-backed provider.
func NewProvider(logger *zap.Logger) *Provider {
	return &Provider{logger: logger}
}

// Backend returns "bounds"
func (p *Provider) Backend() string {
	return "bounds"
}

// Monitors returns one monitor per active display.
func (p *Provider) Monitors() ([]domain.Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, fmt.Errorf("no active displays detected")
	}
	p.logger.Debug("Active displays detected", zap.Int("count", n))

	monitors := make([]domain.Monitor, 0, n)
	for i := 0; i < n; i++ {
		monitors = append(monitors, &Monitor{
			index:  i,
			bounds: screenshot.GetDisplayBounds(i),
		})
	}
	return monitors, nil
}

// Close is a no-op: the bounds queries hold no resources.
func (p *Provider) Close() error {
	return nil
}

// Monitor is one display as seen through its bounds. The display index
// stands in for the output name, and index 0 is the primary display.
type Monitor struct {
	index  int
	bounds image.Rectangle
}

// OutputName returns a synthetic "display-N" name.
func (m *Monitor) OutputName() (string, error) {
	return fmt.Sprintf("display-%d", m.index), nil
}

// IsPrimary reports true for display 0.
func (m *Monitor) IsPrimary() (bool, error) {
	return m.index == 0, nil
}

// Status is always StatusOn: inactive displays have no bounds to report.
func (m *Monitor) Status() (domain.Status, error) {
	return domain.StatusOn, nil
}

// Geometry returns the display's rectangle in the virtual screen.
func (m *Monitor) Geometry() (domain.Geometry, error) {
	return domain.Geometry{
		X:      m.bounds.Min.X,
		Y:      m.bounds.Min.Y,
		Width:  m.bounds.Dx(),
		Height: m.bounds.Dy(),
	}, nil
}

// Resolution equals the current bounds size; the OS does not expose the
// preferred mode here.
func (m *Monitor) Resolution() (domain.Resolution, error) {
	return domain.Resolution{Width: m.bounds.Dx(), Height: m.bounds.Dy()}, nil
}

// EDID is not available from display bounds.
func (m *Monitor) EDID() ([]byte, error) {
	return nil, domain.ErrNoEDID
}

func (m *Monitor) String() string {
	return domain.Format(m)
}
