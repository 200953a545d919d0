//go:build !tinygo && !baremetal

package sim

import "github.com/harveysanders/apblinky/platform"

// SoftAP stores the softAP configuration block. GetErr and SetErr, when
// set, are returned by the next calls.
type SoftAP struct {
	cfg     platform.SoftAPConfig
	commits int

	GetErr error
	SetErr error
}

var _ platform.SoftAP = (*SoftAP)(nil)

// SoftAPConfig returns the stored configuration block or GetErr.
func (a *SoftAP) SoftAPConfig() (platform.SoftAPConfig, error) {
	if a.GetErr != nil {
		return platform.SoftAPConfig{}, a.GetErr
	}
	return a.cfg, nil
}

// SetSoftAPConfig commits cfg unless SetErr is set.
func (a *SoftAP) SetSoftAPConfig(cfg platform.SoftAPConfig) error {
	if a.SetErr != nil {
		return a.SetErr
	}
	a.cfg = cfg
	a.commits++
	return nil
}

// Config returns the committed configuration.
func (a *SoftAP) Config() platform.SoftAPConfig { return a.cfg }

// Preset replaces the stored configuration without counting a commit.
func (a *SoftAP) Preset(cfg platform.SoftAPConfig) { a.cfg = cfg }

// Commits returns the number of successful commits.
func (a *SoftAP) Commits() int { return a.commits }

// DefaultSoftAPConfig is the block a radio holds from its previous
// configuration: a long factory SSID and a stale passphrase that a partial
// overwrite would leak.
func DefaultSoftAPConfig() platform.SoftAPConfig {
	var cfg platform.SoftAPConfig
	cfg.SSIDLen = uint8(copy(cfg.SSID[:], "ESP_5C1A2B_FACTORY_DEFAULT"))
	copy(cfg.Password[:], "previous-passphrase-left-in-flash")
	cfg.AuthMode = platform.AuthOpen
	cfg.Channel = 1
	cfg.MaxConnections = 4
	cfg.BeaconInterval = 100
	return cfg
}
