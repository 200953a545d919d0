// Package wifievent reacts to wireless events delivered by the radio.
package wifievent

import (
	"io"
	"log/slog"

	"github.com/harveysanders/apblinky/lcd"
	"github.com/harveysanders/apblinky/platform"
)

// Starter is started when a station joins the softAP.
type Starter interface {
	Start()
}

// Monitor dispatches wireless events. Only softAP station connections are
// acted on; every other tag is ignored.
type Monitor struct {
	blink   Starter
	yield   func()
	log     *slog.Logger
	display chan<- lcd.Message
}

// MonitorConfig configures a Monitor. All fields are optional.
type MonitorConfig struct {
	Yield   func()
	Logger  *slog.Logger
	Display chan<- lcd.Message // Status lines; dropped when full.
}

// NewMonitor returns a Monitor that starts blink on station connects.
func NewMonitor(blink Starter, cfg MonitorConfig) *Monitor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	yield := cfg.Yield
	if yield == nil {
		yield = func() {}
	}
	return &Monitor{
		blink:   blink,
		yield:   yield,
		log:     logger,
		display: cfg.Display,
	}
}

// OnEvent is the radio's event callback.
func (m *Monitor) OnEvent(ev platform.Event) {
	switch ev.Tag {
	case platform.EventSoftAPStationConnected:
		mac := ""
		if sta, ok := ev.Station(); ok {
			mac = sta.MACString()
			m.log.Info("softap:station-connected", slog.String("mac", mac), slog.Uint64("aid", uint64(sta.AID)))
		} else {
			m.log.Info("softap:station-connected")
		}
		m.blink.Start()
		lcd.Send(m.display, "Station joined", mac)
	default:
		m.log.Debug("wifi:event-ignored", slog.String("tag", ev.Tag.String()))
	}
	m.yield()
}
