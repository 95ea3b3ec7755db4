package domain

import "fmt"

// Monitor is the reporting contract for one physical monitor.
// Implementations are point-in-time views: cached fields are fetched at
// most once and never refreshed, so the caller must construct new
// instances to observe configuration changes (hotplug, mode switch).
// A single instance is not safe for concurrent use.
type Monitor interface {
	// OutputName returns the connector name, e.g. "HDMI-1"
	OutputName() (string, error)

	// IsPrimary reports whether the server currently designates this
	// monitor as primary. The check is live, never cached.
	IsPrimary() (bool, error)

	// Status is StatusOff iff no controller drives the output
	Status() (Status, error)

	// Geometry returns the monitor's position and size on the screen;
	// all zeros when the output is inactive
	Geometry() (Geometry, error)

	// Resolution returns the preferred (native) resolution
	Resolution() (Resolution, error)

	// EDID returns the monitor's raw EDID block, uninterpreted.
	// Backends without EDID access return ErrNoEDID.
	EDID() ([]byte, error)

	// String renders the one-line report form, see Format
	fmt.Stringer
}

// Provider enumerates the connected monitors of one display backend.
type Provider interface {
	// Backend names the backend, e.g. "x11"
	Backend() string

	// Monitors returns one Monitor per connected output, in the order
	// the backend reports them. No ordering is guaranteed across calls.
	Monitors() ([]Monitor, error)

	// Close releases any long-lived backend resources
	Close() error
}

// Config is the application configuration surface.
type Config interface {
	// Backend returns the configured backend name, "auto" to detect
	Backend() string

	// Screen returns the display-server screen index to inspect
	Screen() int
}

// Format renders the shared one-line report form: the monitor's identity
// followed by its preferred resolution. Lookup failures degrade to zero
// values rather than aborting the report.
func Format(m Monitor) string {
	name, _ := m.OutputName()
	res, _ := m.Resolution()
	return fmt.Sprintf("%s\t->\t%dx%d", name, res.Width, res.Height)
}
