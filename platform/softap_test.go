package platform

import (
	"errors"
	"testing"
)

func TestBroadcastSSID(t *testing.T) {
	tests := []struct {
		name    string
		ssid    string
		ssidLen uint8
		want    string
	}{
		{name: "exact length", ssid: "ESPDEMO", ssidLen: 7, want: "ESPDEMO"},
		{name: "short length truncates", ssid: "ESPDEMO", ssidLen: 3, want: "ESP"},
		{name: "long length exposes padding", ssid: "ESPDEMO", ssidLen: 8, want: "ESPDEMO\x00"},
		{name: "zero length reads to NUL", ssid: "ESPDEMO", ssidLen: 0, want: "ESPDEMO"},
		{name: "length past buffer is clamped", ssid: "ESPDEMO", ssidLen: 200, want: "ESPDEMO" + string(make([]byte, 25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg SoftAPConfig
			copy(cfg.SSID[:], tt.ssid)
			cfg.SSIDLen = tt.ssidLen
			if got := cfg.BroadcastSSID(); got != tt.want {
				t.Errorf("BroadcastSSID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBroadcastSSIDFullBuffer(t *testing.T) {
	var cfg SoftAPConfig
	for i := range cfg.SSID {
		cfg.SSID[i] = 'a'
	}
	if got := cfg.BroadcastSSID(); len(got) != MaxSSIDLen {
		t.Errorf("len(BroadcastSSID()) = %d, want %d", len(got), MaxSSIDLen)
	}
}

func TestPassphrase(t *testing.T) {
	var cfg SoftAPConfig
	copy(cfg.Password[:], "0123456789")
	if got := cfg.Passphrase(); got != "0123456789" {
		t.Errorf("Passphrase() = %q", got)
	}
}

func TestParseAuthMode(t *testing.T) {
	for _, m := range []AuthMode{AuthOpen, AuthWEP, AuthWPAPSK, AuthWPA2PSK, AuthWPAWPA2PSK} {
		got, err := ParseAuthMode(m.String())
		if err != nil {
			t.Fatalf("ParseAuthMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseAuthMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got, err := ParseAuthMode("WPA2_PSK"); err != nil || got != AuthWPA2PSK {
		t.Errorf("ParseAuthMode(WPA2_PSK) = %v, %v", got, err)
	}
	_, err := ParseAuthMode("wpa3")
	if !errors.Is(err, ErrUnknownAuthMode) {
		t.Errorf("ParseAuthMode(wpa3) error = %v, want ErrUnknownAuthMode", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Input != "wpa3" {
		t.Errorf("ParseAuthMode(wpa3) error = %#v", err)
	}
}

func TestAuthModeIsPSK(t *testing.T) {
	tests := map[AuthMode]bool{
		AuthOpen:       false,
		AuthWEP:        false,
		AuthWPAPSK:     true,
		AuthWPA2PSK:    true,
		AuthWPAWPA2PSK: true,
	}
	for m, want := range tests {
		if got := m.IsPSK(); got != want {
			t.Errorf("%v.IsPSK() = %t, want %t", m, got, want)
		}
	}
	if got := AuthMode(42).String(); got != "authmode(42)" {
		t.Errorf("String() = %q", got)
	}
}
