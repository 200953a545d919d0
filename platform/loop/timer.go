package loop

import (
	"time"

	"github.com/harveysanders/apblinky/platform"
)

// Timer posts its callback to a Dispatcher from a ticker goroutine. Arm,
// Disarm and SetFunc must be called from the dispatch goroutine.
type Timer struct {
	d     *Dispatcher
	fn    func()
	gen   uint32
	stops []chan struct{}
}

var _ platform.Timer = (*Timer)(nil)

// NewTimer returns a disarmed timer that fires on d.
func (d *Dispatcher) NewTimer() *Timer { return &Timer{d: d} }

// SetFunc sets the callback run on each expiry.
func (t *Timer) SetFunc(fn func()) { t.fn = fn }

// Arm starts the timer. Arming an armed timer leaves the earlier schedule
// running alongside the new one; Disarm first.
func (t *Timer) Arm(interval time.Duration, repeat bool) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	stop := make(chan struct{})
	t.stops = append(t.stops, stop)
	gen := t.gen
	fire := func() {
		// Ticks already queued when Disarm ran are stale.
		if t.gen == gen && t.fn != nil {
			t.fn()
		}
	}
	go t.run(interval, repeat, stop, fire)
}

// Disarm stops every running schedule.
func (t *Timer) Disarm() {
	if len(t.stops) == 0 {
		return
	}
	for _, stop := range t.stops {
		close(stop)
	}
	t.stops = t.stops[:0]
	t.gen++
}

// Active reports the number of schedules armed since the last Disarm.
func (t *Timer) Active() int { return len(t.stops) }

func (t *Timer) run(interval time.Duration, repeat bool, stop <-chan struct{}, fire func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		select {
		case <-stop:
			return
		default:
		}
		select {
		case <-stop:
			return
		case t.d.queue <- fire:
		}
		if !repeat {
			return
		}
	}
}
