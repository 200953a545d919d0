//go:build tinygo

// Package picow runs the firmware on a Raspberry Pi Pico W. The status LED
// hangs off the CYW43439 radio (GPIO0 of the wireless chip), so GPIO writes
// go through the radio driver rather than a machine.Pin.
//
// The code is adapted from the examples in the soypat/cyw43439 repository:
// https://github.com/soypat/cyw43439/tree/main/examples/common
package picow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"runtime"
	"time"

	"github.com/soypat/cyw43439"

	"github.com/harveysanders/apblinky/platform"
	"github.com/harveysanders/apblinky/platform/loop"
)

// LEDMask selects the on-board LED in the Board's GPIO register.
const LEDMask = 1 << ledPin

// ledPin is the CYW43439 GPIO wired to the on-board LED.
const ledPin = 0

// Config configures a Board.
type Config struct {
	// Logger for radio bring-up. Optional.
	Logger *slog.Logger
	// QueueLen is the callback queue length. Zero uses loop.DefaultQueueLen.
	QueueLen int
	// PollInterval between radio polls when no frame is pending.
	PollInterval time.Duration
}

// Board owns the radio and the callback dispatcher.
type Board struct {
	dev   *cyw43439.Device
	disp  *loop.Dispatcher
	timer *loop.Timer
	led   ledPort
	ap    softAP
	sta   stationTracker
	log   *slog.Logger
	poll  time.Duration
	mac   [6]byte
}

// New allocates the board. Bring-up happens in Start.
func New(cfg Config) *Board {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Make temporary logger that does no logging.
		}))
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 5 * time.Millisecond
	}
	disp := loop.New(cfg.QueueLen)
	b := &Board{
		dev:   cyw43439.NewPicoWDevice(),
		disp:  disp,
		timer: disp.NewTimer(),
		log:   logger,
		poll:  poll,
	}
	b.led.b = b
	b.ap.b = b
	b.ap.cfg.Channel = 1
	b.ap.cfg.MaxConnections = 4
	b.ap.cfg.BeaconInterval = 100
	b.sta.post = disp.PostEvent
	return b
}

func (b *Board) Runtime() platform.Runtime { return b.disp }
func (b *Board) GPIO() platform.GPIOPort { return &b.led }
func (b *Board) Timer() platform.Timer { return b.timer }
func (b *Board) SoftAP() platform.SoftAP { return &b.ap }

// Start brings the radio up, starts the receive poller and reports init
// done. The callback queue must be drained by Run.
func (b *Board) Start() error {
	start := time.Now()
	b.dev.SetLogger(b.log)
	b.log.Info("initializing pico W device...")
	err := b.dev.Init(cyw43439.DefaultWifiConfig())
	if err != nil {
		return errors.New("wifi init failed:" + err.Error())
	}
	b.log.Info("cyw43439:Init", slog.Duration("duration", time.Since(start)))

	b.mac, err = b.dev.HardwareAddr6()
	if err != nil {
		return errors.New("get hardware address:" + err.Error())
	}
	b.log.Info("radio up", slog.String("mac", net.HardwareAddr(b.mac[:]).String()))

	b.sta.self = b.mac
	b.dev.RecvEthHandle(b.sta.handleFrame)
	go b.pollRadio()

	b.disp.InitDone()
	return nil
}

// Run drains the callback queue. It never returns.
func (b *Board) Run() {
	for {
		err := b.disp.Run(context.Background())
		b.log.Error("dispatcher stopped", slog.String("err", err.Error()))
	}
}

func (b *Board) pollRadio() {
	for {
		gotPacket, err := b.dev.PollOne()
		if err != nil {
			b.log.Error("radio:PollOne", slog.String("err", err.Error()))
		}
		if !gotPacket {
			time.Sleep(b.poll)
		}
		runtime.Gosched()
	}
}

// ledPort shadows the LED level: the radio chip's GPIO output register
// cannot be read back over the bus.
type ledPort struct {
	b   *Board
	out uint32
}

func (p *ledPort) Output() uint32 { return p.out }

func (p *ledPort) SetClear(set, clear uint32) {
	next := (p.out &^ clear) | set
	err := p.b.dev.GPIOSet(ledPin, next&LEDMask != 0)
	if err != nil {
		p.b.log.Error("led:GPIOSet", slog.String("err", err.Error()))
		return
	}
	p.out = next
}
