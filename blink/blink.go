// Package blink toggles a status LED from a periodic timer.
package blink

import (
	"io"
	"log/slog"
	"time"

	"github.com/harveysanders/apblinky/platform"
)

// Period between two LED toggles.
const Period = 1000 * time.Millisecond

// State of a Controller. There is no terminal state: once Armed the LED
// blinks until reset.
type State uint8

const (
	Idle State = iota
	Armed
)

func (s State) String() string {
	if s == Armed {
		return "armed"
	}
	return "idle"
}

// Config for a Controller.
type Config struct {
	// Mask selects the LED bit in the GPIO output register.
	Mask uint32
	// Yield is called at the end of every tick. Optional.
	Yield func()
	// Logger for tick and arm events. Optional.
	Logger *slog.Logger
}

// Controller owns the only timer handle used for blinking. Start and OnTick
// must be called from the runtime's dispatch thread.
type Controller struct {
	gpio  platform.GPIOPort
	timer platform.Timer
	mask  uint32
	yield func()
	log   *slog.Logger

	state  State
	ticks  uint64
	starts uint64
}

// New returns an idle Controller and binds OnTick as the timer callback.
func New(gpio platform.GPIOPort, timer platform.Timer, cfg Config) *Controller {
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
	c := &Controller{
		gpio:  gpio,
		timer: timer,
		mask:  cfg.Mask,
		yield: yield,
		log:   logger,
	}
	timer.SetFunc(c.OnTick)
	return c
}

// Start (re-)arms the blink timer. The timer is always disarmed first so
// repeated calls never leave two schedules running. The LED level is left
// as is; a restart continues from the current phase.
func (c *Controller) Start() {
	c.timer.Disarm()
	c.timer.Arm(Period, true)
	c.starts++
	if c.state != Armed {
		c.log.Info("blink:armed", slog.Duration("period", Period))
	} else {
		c.log.Debug("blink:rearmed", slog.Uint64("starts", c.starts))
	}
	c.state = Armed
}

// OnTick flips the LED bit.
func (c *Controller) OnTick() {
	if c.gpio.Output()&c.mask != 0 {
		c.gpio.SetClear(0, c.mask)
	} else {
		c.gpio.SetClear(c.mask, 0)
	}
	c.ticks++
	c.yield()
}

// State returns the controller state.
func (c *Controller) State() State { return c.state }

// Ticks returns how many times OnTick has run.
func (c *Controller) Ticks() uint64 { return c.ticks }

// Starts returns how many times Start has run.
func (c *Controller) Starts() uint64 { return c.starts }
