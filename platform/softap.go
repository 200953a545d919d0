package platform

import (
	"bytes"
	"errors"
	"strings"
)

const (
	MaxSSIDLen     = 32
	MaxPasswordLen = 64
	// MinPSKLen is the shortest passphrase accepted for WPA/WPA2 modes.
	MinPSKLen = 8
)

// AuthMode selects the authentication scheme advertised by the softAP.
type AuthMode uint8

const (
	AuthOpen AuthMode = iota
	AuthWEP
	AuthWPAPSK
	AuthWPA2PSK
	AuthWPAWPA2PSK
)

// ErrUnknownAuthMode is wrapped by ParseAuthMode errors.
var ErrUnknownAuthMode = errors.New("unknown auth mode")

// ParseError reports a name that does not map to a known value.
type ParseError struct {
	What  string // "auth mode", "event tag".
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "parse " + e.What + " " + e.Input + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var authModeNames = [...]string{
	AuthOpen:       "open",
	AuthWEP:        "wep",
	AuthWPAPSK:     "wpa_psk",
	AuthWPA2PSK:    "wpa2_psk",
	AuthWPAWPA2PSK: "wpa_wpa2_psk",
}

func (m AuthMode) String() string {
	if int(m) < len(authModeNames) {
		return authModeNames[m]
	}
	return "authmode(" + itoa(int(m)) + ")"
}

// IsPSK reports whether the mode uses a WPA passphrase.
func (m AuthMode) IsPSK() bool {
	return m == AuthWPAPSK || m == AuthWPA2PSK || m == AuthWPAWPA2PSK
}

// ParseAuthMode parses the names returned by AuthMode.String. Matching is
// case-insensitive.
func ParseAuthMode(s string) (AuthMode, error) {
	s = strings.ToLower(s)
	for i, name := range authModeNames {
		if s == name {
			return AuthMode(i), nil
		}
	}
	return 0, &ParseError{What: "auth mode", Input: s, Err: ErrUnknownAuthMode}
}

// SoftAPConfig mirrors the radio's softAP configuration block. The SSID and
// password live in fixed, zero-padded buffers.
type SoftAPConfig struct {
	SSID           [MaxSSIDLen]byte
	SSIDLen        uint8
	Password       [MaxPasswordLen]byte
	AuthMode       AuthMode
	Channel        uint8
	Hidden         bool
	MaxConnections uint8
	BeaconInterval uint16 // In TUs (1024us).
}

// BroadcastSSID returns the network name the radio advertises. With
// SSIDLen set to zero the radio treats the buffer as NUL-terminated.
func (c *SoftAPConfig) BroadcastSSID() string {
	if c.SSIDLen == 0 {
		n := bytes.IndexByte(c.SSID[:], 0)
		if n < 0 {
			n = len(c.SSID)
		}
		return string(c.SSID[:n])
	}
	n := int(c.SSIDLen)
	if n > len(c.SSID) {
		n = len(c.SSID)
	}
	return string(c.SSID[:n])
}

// Passphrase returns the NUL-terminated password.
func (c *SoftAPConfig) Passphrase() string {
	n := bytes.IndexByte(c.Password[:], 0)
	if n < 0 {
		n = len(c.Password)
	}
	return string(c.Password[:n])
}

// itoa avoids pulling strconv/fmt into String on small targets.
func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
