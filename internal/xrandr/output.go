package xrandr

import (
	"github.com/pkg/errors"

	"edider/internal/domain"
)

const (
	edidProperty = "EDID"
	// edidLongLength is the property read length in 32-bit units: a 400
	// byte request. Actual EDID blocks are 128 or 256 bytes; the property
	// store returns whatever it has.
	edidLongLength = 100
)

// Output lazily fetches and caches per-output state. Each cache is
// populated on first access and never invalidated, so an Output is a
// point-in-time snapshot of the server's configuration. Not safe for
// concurrent use.
type Output struct {
	id      domain.OutputID
	screen  int
	connect ConnectFunc

	edid       []byte
	edidLoaded bool
	info       *domain.OutputInfo
	modes      []domain.Mode
}

// NewOutput creates an accessor for the given output id. Every property
// access opens its own scoped connection through connect.
func NewOutput(id domain.OutputID, screen int, connect ConnectFunc) *Output {
	return &Output{id: id, screen: screen, connect: connect}
}

// ID returns the output id this accessor wraps.
func (o *Output) ID() domain.OutputID {
	return o.id
}

func (o *Output) withConn(fn func(Conn) error) error {
	conn, err := o.connect(o.screen)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// EDID returns the output's raw EDID block. The underlying property is
// read at most once per accessor; later calls return the cached bytes even
// if the property has since changed.
func (o *Output) EDID() ([]byte, error) {
	if o.edidLoaded {
		return o.edid, nil
	}
	var data []byte
	err := o.withConn(func(c Conn) error {
		var err error
		data, err = c.OutputProperty(o.id, edidProperty, edidLongLength)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.edid = data
	o.edidLoaded = true
	return o.edid, nil
}

// PrimaryOutput reports the server's current primary output for the
// screen. Never cached: the primary designation can change at runtime.
func (o *Output) PrimaryOutput() (domain.OutputID, error) {
	var id domain.OutputID
	err := o.withConn(func(c Conn) error {
		var err error
		id, err = c.PrimaryOutput()
		return err
	})
	return id, err
}

// Info returns the output's info record, cached after the first fetch.
func (o *Output) Info() (*domain.OutputInfo, error) {
	if o.info != nil {
		return o.info, nil
	}
	var info *domain.OutputInfo
	err := o.withConn(func(c Conn) error {
		var err error
		info, err = c.OutputInfo(o.id)
		return err
	})
	if err != nil {
		return nil, err
	}
	o.info = info
	return o.info, nil
}

// Name returns the output's connector name.
func (o *Output) Name() (string, error) {
	info, err := o.Info()
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// CRTC resolves the controller currently bound to this output. The info
// record is cached, but the controller query itself runs on every call.
func (o *Output) CRTC() (domain.CRTC, error) {
	info, err := o.Info()
	if err != nil {
		return domain.CRTC{}, err
	}
	crtcs, err := crtcInfo(o.connect, o.screen, info.Crtc)
	if err != nil {
		return domain.CRTC{}, err
	}
	return crtcs[0], nil
}

// CRTCs resolves every controller that could drive this output. Not cached.
func (o *Output) CRTCs() ([]domain.CRTC, error) {
	info, err := o.Info()
	if err != nil {
		return nil, err
	}
	return crtcInfo(o.connect, o.screen, info.Crtcs...)
}

func (o *Output) fetchModes() ([]domain.Mode, error) {
	var modes []domain.Mode
	err := o.withConn(func(c Conn) error {
		res, err := c.ScreenResources()
		if err != nil {
			return err
		}
		modes = res.Modes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return modes, nil
}

// Modes returns every mode known to the screen, not filtered to this
// output. Cached after the first fetch.
func (o *Output) Modes() ([]domain.Mode, error) {
	if o.modes != nil {
		return o.modes, nil
	}
	modes, err := o.fetchModes()
	if err != nil {
		return nil, err
	}
	o.modes = modes
	return o.modes, nil
}

// PreferredMode resolves the output's preferred mode: NumPreferred is a
// 1-based index into the output's own mode-id list, and the indexed id
// must match exactly one entry of the screen mode list.
func (o *Output) PreferredMode() (domain.Mode, error) {
	info, err := o.Info()
	if err != nil {
		return domain.Mode{}, err
	}
	if info.NumPreferred < 1 || info.NumPreferred > len(info.Modes) {
		return domain.Mode{}, errors.Errorf(
			"preferred mode index %d out of range for output %q with %d modes",
			info.NumPreferred, info.Name, len(info.Modes))
	}
	want := info.Modes[info.NumPreferred-1]

	modes, err := o.Modes()
	if err != nil {
		return domain.Mode{}, err
	}
	return exactlyOne(modes, want, "preferred")
}

// CurrentMode resolves the mode the bound controller is driving. The mode
// list is refetched on every call, deliberately bypassing the cache: the
// active mode can change at runtime while the preferred one cannot.
// Returns (nil, nil) when no controller drives the output.
func (o *Output) CurrentMode() (*domain.Mode, error) {
	modes, err := o.fetchModes()
	if err != nil {
		return nil, err
	}
	crtc, err := o.CRTC()
	if err != nil {
		return nil, err
	}
	if crtc.Info == nil {
		return nil, nil
	}
	mode, err := exactlyOne(modes, crtc.Info.Mode, "current")
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

// exactlyOne scans for the mode with the wanted id. Zero or multiple
// matches means the server handed us malformed state.
func exactlyOne(modes []domain.Mode, want domain.ModeID, kind string) (domain.Mode, error) {
	var found []domain.Mode
	for _, m := range modes {
		if m.ID == want {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return domain.Mode{}, errors.Errorf(
			"expected exactly one %s mode with id %d, found %d", kind, want, len(found))
	}
	return found[0], nil
}
