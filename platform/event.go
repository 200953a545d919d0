package platform

import "errors"

// EventTag identifies the kind of a wireless event.
type EventTag uint8

// Wireless event tags, in the order the radio firmware numbers them.
const (
	EventStationConnected EventTag = iota
	EventStationDisconnected
	EventStationAuthModeChange
	EventStationGotIP
	EventStationDHCPTimeout
	EventSoftAPStationConnected
	EventSoftAPStationDisconnected
	EventSoftAPProbeRequest
	EventOpModeChanged
	EventSoftAPDistributeStationIP
)

// ErrUnknownEventTag is wrapped by ParseEventTag errors.
var ErrUnknownEventTag = errors.New("unknown event tag")

var eventTagNames = [...]string{
	EventStationConnected:          "sta_connected",
	EventStationDisconnected:       "sta_disconnected",
	EventStationAuthModeChange:     "sta_authmode_change",
	EventStationGotIP:              "sta_got_ip",
	EventStationDHCPTimeout:        "sta_dhcp_timeout",
	EventSoftAPStationConnected:    "softap_sta_connected",
	EventSoftAPStationDisconnected: "softap_sta_disconnected",
	EventSoftAPProbeRequest:        "softap_probe_request",
	EventOpModeChanged:             "opmode_changed",
	EventSoftAPDistributeStationIP: "softap_distribute_sta_ip",
}

func (t EventTag) String() string {
	if int(t) < len(eventTagNames) {
		return eventTagNames[t]
	}
	return "event(" + itoa(int(t)) + ")"
}

// ParseEventTag parses the names returned by EventTag.String.
func ParseEventTag(s string) (EventTag, error) {
	for i, name := range eventTagNames {
		if s == name {
			return EventTag(i), nil
		}
	}
	return 0, &ParseError{What: "event tag", Input: s, Err: ErrUnknownEventTag}
}

// Event is a wireless event as delivered by the radio. Payload depends on
// Tag; softAP station events carry a StationInfo.
type Event struct {
	Tag     EventTag
	Payload any
}

// StationInfo identifies a station associated with the softAP.
type StationInfo struct {
	MAC [6]byte
	AID uint8 // Association ID assigned by the softAP.
}

// MACString formats the station address as colon separated hex.
func (s StationInfo) MACString() string {
	const hex = "0123456789abcdef"
	buf := make([]byte, 0, 17)
	for i, b := range s.MAC {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, hex[b>>4], hex[b&0xf])
	}
	return string(buf)
}

// Station returns the StationInfo payload of e, if any.
func (e Event) Station() (StationInfo, bool) {
	info, ok := e.Payload.(StationInfo)
	return info, ok
}
