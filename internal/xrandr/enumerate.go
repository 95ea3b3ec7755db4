package xrandr

import "edider/internal/domain"

// ConnectedOutputs lists the ids of all outputs reporting a connected
// state, in the order the server reports them. The server guarantees no
// particular order across sessions.
func ConnectedOutputs(connect ConnectFunc, screen int) ([]domain.OutputID, error) {
	conn, err := connect(screen)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := conn.ScreenResources()
	if err != nil {
		return nil, err
	}

	var connected []domain.OutputID
	for _, id := range res.Outputs {
		info, err := conn.OutputInfo(id)
		if err != nil {
			return nil, err
		}
		if info.Connection == domain.Connected {
			connected = append(connected, id)
		}
	}
	return connected, nil
}

// crtcInfo resolves controller ids into (id, info) pairs over a single
// scope. Controller id 0 is the "no controller bound" sentinel and the
// server rejects its query; that one failure maps to a nil Info instead of
// an error. Any other failure propagates.
func crtcInfo(connect ConnectFunc, screen int, ids ...domain.CrtcID) ([]domain.CRTC, error) {
	conn, err := connect(screen)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	crtcs := make([]domain.CRTC, 0, len(ids))
	for _, id := range ids {
		info, err := conn.CrtcInfo(id)
		if err != nil {
			if id == 0 {
				crtcs = append(crtcs, domain.CRTC{ID: id})
				continue
			}
			return nil, err
		}
		crtcs = append(crtcs, domain.CRTC{ID: id, Info: info})
	}
	return crtcs, nil
}
