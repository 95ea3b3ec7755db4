package xrandr

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"edider/internal/domain"
)

// Conn is one scoped connection to the X server: an open display connection
// plus a throwaway 1x1 window the RandR queries are issued against. Every
// query operation opens its own Conn and closes it when done; nothing is
// held across calls, so no server-side window resources can leak.
//
//go:generate mockgen -destination=mocks/conn_mock.go -package=mocks edider/internal/xrandr Conn
type Conn interface {
	// ScreenResources returns the screen-wide output/controller/mode inventory
	ScreenResources() (*domain.ScreenResources, error)

	// OutputInfo queries one output with no config-timestamp constraint
	OutputInfo(id domain.OutputID) (*domain.OutputInfo, error)

	// CrtcInfo queries one controller. The server rejects queries for the
	// sentinel id 0; callers handle that case, see crtcInfo.
	CrtcInfo(id domain.CrtcID) (*domain.CRTCInfo, error)

	// PrimaryOutput returns the output the server designates as primary
	PrimaryOutput() (domain.OutputID, error)

	// OutputProperty reads longLength 32-bit units of the named property.
	// The atom must already exist on the server.
	OutputProperty(id domain.OutputID, name string, longLength uint32) ([]byte, error)

	// Close destroys the scratch window and closes the connection
	Close() error
}

// ConnectFunc opens a scoped connection for one query operation.
type ConnectFunc func(screen int) (Conn, error)

type xConn struct {
	x   *xgb.Conn
	win xproto.Window
}

// Connect establishes a connection to the X server, initializes the RandR
// extension and creates a minimal scratch window on the given screen's
// root. The caller must Close the result on every exit path.
func Connect(screen int) (Conn, error) {
	x, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to X server")
	}
	if err := randr.Init(x); err != nil {
		x.Close()
		return nil, errors.Wrap(err, "failed to init RandR extension")
	}

	setup := xproto.Setup(x)
	if screen < 0 || screen >= len(setup.Roots) {
		x.Close()
		return nil, errors.Errorf("screen %d out of range, server has %d", screen, len(setup.Roots))
	}
	si := setup.Roots[screen]

	wid, err := xproto.NewWindowId(x)
	if err != nil {
		x.Close()
		return nil, errors.Wrap(err, "failed to allocate window id")
	}
	err = xproto.CreateWindowChecked(x, si.RootDepth, wid, si.Root,
		0, 0, 1, 1, 1,
		xproto.WindowClassCopyFromParent, si.RootVisual, 0, []uint32{}).Check()
	if err != nil {
		x.Close()
		return nil, errors.Wrap(err, "failed to create scratch window")
	}

	return &xConn{x: x, win: wid}, nil
}

func (c *xConn) Close() error {
	xproto.DestroyWindow(c.x, c.win)
	c.x.Close()
	return nil
}

func (c *xConn) ScreenResources() (*domain.ScreenResources, error) {
	rep, err := randr.GetScreenResources(c.x, c.win).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get screen resources")
	}

	res := &domain.ScreenResources{
		Outputs: make([]domain.OutputID, 0, len(rep.Outputs)),
		Crtcs:   make([]domain.CrtcID, 0, len(rep.Crtcs)),
		Modes:   make([]domain.Mode, 0, len(rep.Modes)),
	}
	for _, o := range rep.Outputs {
		res.Outputs = append(res.Outputs, domain.OutputID(o))
	}
	for _, ct := range rep.Crtcs {
		res.Crtcs = append(res.Crtcs, domain.CrtcID(ct))
	}
	for _, m := range rep.Modes {
		res.Modes = append(res.Modes, domain.Mode{
			ID:       domain.ModeID(m.Id),
			Width:    int(m.Width),
			Height:   int(m.Height),
			DotClock: m.DotClock,
			HTotal:   int(m.Htotal),
			VTotal:   int(m.Vtotal),
		})
	}
	return res, nil
}

func (c *xConn) OutputInfo(id domain.OutputID) (*domain.OutputInfo, error) {
	rep, err := randr.GetOutputInfo(c.x, randr.Output(id), 0).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get info of output %d", id)
	}

	info := &domain.OutputInfo{
		Name:         string(rep.Name),
		Connection:   domain.Connection(rep.Connection),
		Crtc:         domain.CrtcID(rep.Crtc),
		Crtcs:        make([]domain.CrtcID, 0, len(rep.Crtcs)),
		Modes:        make([]domain.ModeID, 0, len(rep.Modes)),
		NumPreferred: int(rep.NumPreferred),
	}
	for _, ct := range rep.Crtcs {
		info.Crtcs = append(info.Crtcs, domain.CrtcID(ct))
	}
	for _, m := range rep.Modes {
		info.Modes = append(info.Modes, domain.ModeID(m))
	}
	return info, nil
}

func (c *xConn) CrtcInfo(id domain.CrtcID) (*domain.CRTCInfo, error) {
	rep, err := randr.GetCrtcInfo(c.x, randr.Crtc(id), 0).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get info of crtc %d", id)
	}
	return &domain.CRTCInfo{
		X:      int(rep.X),
		Y:      int(rep.Y),
		Width:  int(rep.Width),
		Height: int(rep.Height),
		Mode:   domain.ModeID(rep.Mode),
	}, nil
}

func (c *xConn) PrimaryOutput() (domain.OutputID, error) {
	rep, err := randr.GetOutputPrimary(c.x, c.win).Reply()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get primary output")
	}
	return domain.OutputID(rep.Output), nil
}

func (c *xConn) OutputProperty(id domain.OutputID, name string, longLength uint32) ([]byte, error) {
	atom, err := xproto.InternAtom(c.x, true, uint16(len(name)), name).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to intern atom %q", name)
	}
	// only-if-exists lookup: an undefined atom comes back as None
	if atom.Atom == xproto.AtomNone {
		return nil, errors.Errorf("atom %q is not defined on the server", name)
	}

	prop, err := randr.GetOutputProperty(c.x, randr.Output(id), atom.Atom,
		xproto.AtomInteger, 0, longLength, false, false).Reply()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read property %q of output %d", name, id)
	}
	return prop.Data, nil
}
