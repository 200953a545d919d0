// Package firmware wires the softAP blinker together: boot, the init-done
// gate, softAP configuration and the connect-to-blink event chain.
package firmware

import (
	"errors"
	"io"
	"log/slog"

	"github.com/harveysanders/apblinky/apconfig"
	"github.com/harveysanders/apblinky/blink"
	"github.com/harveysanders/apblinky/lcd"
	"github.com/harveysanders/apblinky/platform"
	"github.com/harveysanders/apblinky/wifievent"
)

// Board is the set of platform services the firmware runs on. Pin muxing of
// the LED must be done before Boot.
type Board struct {
	Runtime platform.Runtime
	GPIO    platform.GPIOPort
	Timer   platform.Timer
	SoftAP  platform.SoftAP
	// LEDMask selects the status LED bit in the GPIO output register.
	LEDMask uint32
	// Logger for firmware events. Optional.
	Logger *slog.Logger
	// Display receives status lines. Optional.
	Display chan<- lcd.Message
}

// Firmware is the connect-triggered blinker.
type Firmware struct {
	board   Board
	creds   apconfig.Credentials
	log     *slog.Logger
	ap      *apconfig.Configurator
	blinker *blink.Controller
	monitor *wifievent.Monitor

	initialized bool
}

// New validates settings and builds the firmware for board. Nothing is
// registered with the board until Boot.
func New(board Board, settings Settings) (*Firmware, error) {
	switch {
	case board.Runtime == nil:
		return nil, errors.New("firmware: nil runtime")
	case board.GPIO == nil:
		return nil, errors.New("firmware: nil gpio")
	case board.Timer == nil:
		return nil, errors.New("firmware: nil timer")
	case board.SoftAP == nil:
		return nil, errors.New("firmware: nil softap")
	case board.LEDMask == 0:
		return nil, errors.New("firmware: empty led mask")
	}
	creds, err := settings.Credentials()
	if err != nil {
		return nil, err
	}

	logger := board.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}

	blinker := blink.New(board.GPIO, board.Timer, blink.Config{
		Mask:   board.LEDMask,
		Yield:  board.Runtime.Yield,
		Logger: logger,
	})
	return &Firmware{
		board:   board,
		creds:   creds,
		log:     logger,
		ap:      apconfig.NewConfigurator(board.SoftAP, logger),
		blinker: blinker,
		monitor: wifievent.NewMonitor(blinker, wifievent.MonitorConfig{
			Yield:   board.Runtime.Yield,
			Logger:  logger,
			Display: board.Display,
		}),
	}, nil
}

// Boot is the firmware entry point. It drives the LED low and registers the
// init-done callback, then returns; everything else happens in callbacks.
func (f *Firmware) Boot() {
	f.board.GPIO.SetClear(0, f.board.LEDMask)
	f.board.Runtime.OnInitDone(f.initDone)
	f.log.Info("boot:waiting-for-init")
}

// initDone runs once bring-up has completed. The event handler is only
// registered here, so no wireless event can be handled before it.
func (f *Firmware) initDone() {
	if f.initialized {
		f.log.Warn("init:already-done")
		return
	}
	f.initialized = true

	err := f.ap.Apply(f.creds)
	if err != nil {
		f.log.Error("init:softap-config-failed", slog.String("err", err.Error()))
	} else {
		lcd.Send(f.board.Display, "AP ready", f.creds.SSID())
	}
	f.board.Runtime.SetEventHandler(f.monitor.OnEvent)
	f.log.Info("init:done", slog.String("ssid", f.creds.SSID()))
}

// Blinker returns the blink controller.
func (f *Firmware) Blinker() *blink.Controller { return f.blinker }
