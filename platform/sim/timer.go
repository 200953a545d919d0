//go:build !tinygo && !baremetal

package sim

import (
	"time"

	"github.com/harveysanders/apblinky/platform"
)

// Duration is simulated time.
type Duration = time.Duration

// minInterval keeps a zero-interval repeating timer from stalling Advance.
const minInterval = time.Millisecond

type schedule struct {
	due      Duration
	interval Duration
	repeat   bool
}

// Timer is a simulated software timer. Like the radio SDK's timers, arming
// an armed Timer does not replace the running schedule: both keep firing.
type Timer struct {
	p         *Platform
	fn        func()
	schedules []schedule

	arms       int
	doubleArms int
	fired      int
}

var _ platform.Timer = (*Timer)(nil)

// SetFunc sets the callback run on each expiry.
func (t *Timer) SetFunc(fn func()) { t.fn = fn }

// Arm adds a schedule firing interval from now, repeating if repeat is set.
func (t *Timer) Arm(interval time.Duration, repeat bool) {
	if interval < minInterval {
		interval = minInterval
	}
	t.arms++
	if len(t.schedules) > 0 {
		t.doubleArms++
	}
	t.schedules = append(t.schedules, schedule{
		due:      t.p.now + interval,
		interval: interval,
		repeat:   repeat,
	})
}

// Disarm drops every pending schedule.
func (t *Timer) Disarm() { t.schedules = t.schedules[:0] }

// Armed reports whether at least one schedule is pending.
func (t *Timer) Armed() bool { return len(t.schedules) > 0 }

// Active returns the number of pending schedules. It is greater than one
// only after an arm without an intervening disarm.
func (t *Timer) Active() int { return len(t.schedules) }

// Arms returns how many times Arm was called.
func (t *Timer) Arms() int { return t.arms }

// DoubleArms returns how many times Arm was called on an armed timer.
func (t *Timer) DoubleArms() int { return t.doubleArms }

// Fired returns how many times the timer fired.
func (t *Timer) Fired() int { return t.fired }
