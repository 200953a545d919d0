package picow

import (
	"errors"

	"github.com/soypat/lneto/ethernet"

	"github.com/harveysanders/apblinky/platform"
)

// ErrAuthUnsupported is returned for softAP auth modes the CYW43439 access
// point cannot run. It only offers open networks and WPA2-AES.
var ErrAuthUnsupported = errors.New("auth mode unsupported by radio")

// startAPArgs maps a softAP configuration block onto the radio's StartAP
// arguments. An empty passphrase selects an open network.
func startAPArgs(cfg *platform.SoftAPConfig) (ssid, pass string, err error) {
	switch cfg.AuthMode {
	case platform.AuthOpen:
		return cfg.BroadcastSSID(), "", nil
	case platform.AuthWPA2PSK:
		pass = cfg.Passphrase()
		if len(pass) < platform.MinPSKLen {
			return "", "", errors.New("softap passphrase shorter than " + cfg.AuthMode.String() + " allows")
		}
		return cfg.BroadcastSSID(), pass, nil
	}
	return "", "", authError{mode: cfg.AuthMode}
}

type authError struct{ mode platform.AuthMode }

func (e authError) Error() string { return "softap " + e.mode.String() + ": " + ErrAuthUnsupported.Error() }
func (e authError) Unwrap() error { return ErrAuthUnsupported }

// maxStations bounds the association table. Older entries are evicted.
const maxStations = 8

// stationTracker turns the first frame seen from an unknown unicast source
// into a softAP station-connected event. It runs on the radio poll goroutine.
type stationTracker struct {
	self    [6]byte
	known   [maxStations][6]byte
	n       int
	next    int
	nextAID uint8
	post    func(platform.Event) bool
}

// handleFrame is registered with the radio's receive path. A station whose
// event could not be queued stays unknown so its next frame retries.
func (t *stationTracker) handleFrame(pkt []byte) error {
	frm, err := ethernet.NewFrame(pkt)
	if err != nil {
		return err
	}
	src := *frm.SourceHardwareAddr()
	if src == t.self || src[0]&1 != 0 || t.seen(src) {
		return nil
	}
	ev := platform.Event{
		Tag:     platform.EventSoftAPStationConnected,
		Payload: platform.StationInfo{MAC: src, AID: t.nextAID + 1},
	}
	if !t.post(ev) {
		return nil
	}
	t.nextAID++
	t.known[t.next] = src
	t.next = (t.next + 1) % maxStations
	if t.n < maxStations {
		t.n++
	}
	return nil
}

func (t *stationTracker) seen(mac [6]byte) bool {
	for i := 0; i < t.n; i++ {
		if t.known[i] == mac {
			return true
		}
	}
	return false
}
