// Package apconfig builds softAP credentials and applies them to the radio.
package apconfig

import (
	"errors"
	"strconv"

	"github.com/harveysanders/apblinky/platform"
)

var (
	ErrLengthMismatch   = errors.New("declared length does not match value")
	ErrEmptySSID        = errors.New("empty ssid")
	ErrSSIDTooLong      = errors.New("ssid longer than 32 bytes")
	ErrPasswordTooLong  = errors.New("password longer than 64 bytes")
	ErrPasswordTooShort = errors.New("password shorter than 8 bytes")
)

// ValidationError reports a credential whose declared byte length differs
// from the length of its value.
type ValidationError struct {
	Field    string
	Declared int
	Actual   int
}

func (e *ValidationError) Error() string {
	return e.Field + ": declared length " + strconv.Itoa(e.Declared) +
		", actual " + strconv.Itoa(e.Actual)
}

func (e *ValidationError) Unwrap() error { return ErrLengthMismatch }

// Credentials is the identity the softAP broadcasts. The zero value is not
// valid; use NewCredentials.
type Credentials struct {
	ssid     []byte
	password []byte
	authMode platform.AuthMode
}

// NewCredentials validates the build-time credential constants. Each
// declared length must equal the byte length of its string.
func NewCredentials(ssid string, ssidLen int, password string, passwordLen int, mode platform.AuthMode) (Credentials, error) {
	if ssidLen != len(ssid) {
		return Credentials{}, &ValidationError{Field: "ssid", Declared: ssidLen, Actual: len(ssid)}
	}
	if passwordLen != len(password) {
		return Credentials{}, &ValidationError{Field: "password", Declared: passwordLen, Actual: len(password)}
	}
	switch {
	case len(ssid) == 0:
		return Credentials{}, ErrEmptySSID
	case len(ssid) > platform.MaxSSIDLen:
		return Credentials{}, ErrSSIDTooLong
	case len(password) > platform.MaxPasswordLen:
		return Credentials{}, ErrPasswordTooLong
	case mode.IsPSK() && len(password) < platform.MinPSKLen:
		return Credentials{}, ErrPasswordTooShort
	}
	return Credentials{
		ssid:     []byte(ssid),
		password: []byte(password),
		authMode: mode,
	}, nil
}

// SSID returns the network name.
func (c Credentials) SSID() string { return string(c.ssid) }

// SSIDLen returns the SSID length in bytes.
func (c Credentials) SSIDLen() int { return len(c.ssid) }

// Password returns the passphrase.
func (c Credentials) Password() string { return string(c.password) }

// PasswordLen returns the passphrase length in bytes.
func (c Credentials) PasswordLen() int { return len(c.password) }

// AuthMode returns the advertised authentication scheme.
func (c Credentials) AuthMode() platform.AuthMode { return c.authMode }
