package apconfig

import (
	"errors"
	"io"
	"log/slog"

	"github.com/harveysanders/apblinky/platform"
)

// Configurator writes credentials into the radio's softAP configuration.
type Configurator struct {
	ap  platform.SoftAP
	log *slog.Logger
}

// NewConfigurator returns a Configurator for ap. A nil logger discards.
func NewConfigurator(ap platform.SoftAP, logger *slog.Logger) *Configurator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Configurator{ap: ap, log: logger}
}

// Apply reads the current softAP configuration, replaces SSID, password and
// auth mode, and commits it. Fields it does not own (channel, beacon
// interval, ...) keep the radio's values.
func (c *Configurator) Apply(creds Credentials) error {
	cfg, err := c.ap.SoftAPConfig()
	if err != nil {
		return errors.New("softap get config:" + err.Error())
	}

	cfg.SSIDLen = uint8(padCopy(cfg.SSID[:], creds.ssid, len(creds.ssid)))
	padCopy(cfg.Password[:], creds.password, len(creds.password))
	cfg.AuthMode = creds.authMode

	err = c.ap.SetSoftAPConfig(cfg)
	if err != nil {
		return errors.New("softap set config:" + err.Error())
	}
	c.log.Info("softap:configured",
		slog.String("ssid", cfg.BroadcastSSID()),
		slog.Int("passlen", len(creds.password)),
		slog.String("auth", cfg.AuthMode.String()),
	)
	return nil
}

// padCopy zeroes dst and copies the first n bytes of the zero-padded src
// into it. It returns n clamped to len(dst).
func padCopy(dst, src []byte, n int) int {
	clear(dst)
	if n > len(dst) {
		n = len(dst)
	}
	if n < 0 {
		n = 0
	}
	copy(dst[:n], src)
	return n
}
