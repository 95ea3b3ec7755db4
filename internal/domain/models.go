package domain

import "errors"

// OutputID is the server-assigned handle of a physical video output.
// It is opaque and only stable for the current server session.
type OutputID uint32

// CrtcID is the server-assigned handle of a display controller.
// Id 0 means "no controller bound".
type CrtcID uint32

// ModeID is the server-assigned handle of a timing/resolution mode.
type ModeID uint32

// Status reports whether an output is currently driven by a controller.
type Status string

const (
	// StatusOn indicates a controller is bound to the output
	StatusOn Status = "on"
	// StatusOff indicates no controller drives the output
	StatusOff Status = "off"
)

// Connection is the server's connection state of an output. Only the
// connected value (0) has a defined meaning here; anything else is treated
// as "not connected" without further classification.
type Connection byte

const (
	// Connected means a monitor is attached to the output
	Connected Connection = 0
	// Disconnected means nothing is attached to the output
	Disconnected Connection = 1
	// ConnectionUnknown means the server cannot tell
	ConnectionUnknown Connection = 2
)

// ErrNoEDID is returned by backends that cannot read EDID blocks.
var ErrNoEDID = errors.New("EDID not available from this backend")

// Geometry is the position and size of an output on the screen, in pixels.
// An inactive output reports all zeros.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Resolution holds display dimensions in pixels.
type Resolution struct {
	Width  int
	Height int
}

// OutputInfo is the per-output record reported by the server.
type OutputInfo struct {
	// Name is the connector name, e.g. "HDMI-1"
	Name string
	// Connection is the reported connection state
	Connection Connection
	// Crtc is the controller currently bound to the output, 0 if none
	Crtc CrtcID
	// Crtcs lists the controllers that could drive this output
	Crtcs []CrtcID
	// Modes lists the mode ids valid for this output
	Modes []ModeID
	// NumPreferred is a 1-based index into Modes naming the preferred mode
	NumPreferred int
}

// CRTCInfo is the geometry and active mode of one display controller.
type CRTCInfo struct {
	X      int
	Y      int
	Width  int
	Height int
	// Mode is the active mode id, 0 if none
	Mode ModeID
}

// CRTC pairs a controller id with its resolved info. Info is nil for the
// "no controller bound" sentinel id 0, whose query the server rejects.
type CRTC struct {
	ID   CrtcID
	Info *CRTCInfo
}

// Mode is one timing/resolution configuration known to the screen.
type Mode struct {
	ID     ModeID
	Width  int
	Height int
	// DotClock is the pixel clock in Hz
	DotClock uint32
	HTotal   int
	VTotal   int
}

// Refresh derives the vertical refresh rate in Hz from the reported
// timings. Returns 0 when the server did not supply usable timings.
func (m Mode) Refresh() float64 {
	if m.HTotal == 0 || m.VTotal == 0 {
		return 0
	}
	return float64(m.DotClock) / (float64(m.HTotal) * float64(m.VTotal))
}

// ScreenResources is the screen-wide inventory of outputs, controllers and
// modes.
type ScreenResources struct {
	Outputs []OutputID
	Crtcs   []CrtcID
	Modes   []Mode
}
