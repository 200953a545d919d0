package firmware

import (
	"github.com/harveysanders/apblinky/apconfig"
	"github.com/harveysanders/apblinky/platform"
)

// Set via linker flags, e.g.
//
//	tinygo flash -target=pico-w -ldflags="-X 'github.com/harveysanders/apblinky/firmware.ssid=ESPDEMO' -X 'github.com/harveysanders/apblinky/firmware.pass=0123456789'" ./cmd/picow-apblink
var (
	ssid = "ESPDEMO"
	pass = "0123456789"
	auth = "wpa2_psk"
)

// Settings are the build-time softAP credentials. The lengths are declared
// separately from the strings and must match them.
type Settings struct {
	SSID        string
	SSIDLen     int
	Password    string
	PasswordLen int
	AuthMode    platform.AuthMode
}

// DefaultSettings returns the credentials baked in at link time.
func DefaultSettings() (Settings, error) {
	mode, err := platform.ParseAuthMode(auth)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		SSID:        ssid,
		SSIDLen:     len(ssid),
		Password:    pass,
		PasswordLen: len(pass),
		AuthMode:    mode,
	}, nil
}

// Credentials validates s.
func (s Settings) Credentials() (apconfig.Credentials, error) {
	return apconfig.NewCredentials(s.SSID, s.SSIDLen, s.Password, s.PasswordLen, s.AuthMode)
}
