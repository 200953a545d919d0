//go:build tinygo

package picow

import (
	"errors"
	"log/slog"

	"github.com/harveysanders/apblinky/platform"
)

// softAP keeps the last committed configuration block and starts the
// radio's access point from it.
type softAP struct {
	b   *Board
	cfg platform.SoftAPConfig
}

func (a *softAP) SoftAPConfig() (platform.SoftAPConfig, error) { return a.cfg, nil }

// SetSoftAPConfig starts the access point. The radio must be initialized.
func (a *softAP) SetSoftAPConfig(cfg platform.SoftAPConfig) error {
	ssid, pass, err := startAPArgs(&cfg)
	if err != nil {
		return err
	}
	err = a.b.dev.StartAP(ssid, pass, cfg.Channel)
	if err != nil {
		return errors.New("softap start:" + err.Error())
	}
	a.cfg = cfg
	a.b.log.Info("softap:started",
		slog.String("ssid", ssid),
		slog.String("auth", cfg.AuthMode.String()),
		slog.Uint64("channel", uint64(cfg.Channel)),
	)
	return nil
}
