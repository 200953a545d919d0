//go:build !tinygo && !baremetal

// Package sim is a deterministic, single-threaded board used for host-side
// testing and the apblinksim tool. Simulated time only moves in Advance, and
// every callback runs synchronously on the caller's goroutine.
package sim

import (
	"github.com/harveysanders/apblinky/platform"
)

// Platform simulates the board runtime, GPIO bank, softAP and timers.
type Platform struct {
	now     Duration
	gpio    GPIO
	ap      SoftAP
	timers  []*Timer
	booted  bool
	initFn  func()
	handler func(platform.Event)

	yields  int
	dropped int
}

// New returns a platform with the GPIO output register at zero and the
// radio holding its factory softAP configuration.
func New() *Platform {
	p := &Platform{}
	p.ap.cfg = DefaultSoftAPConfig()
	return p
}

var _ platform.Runtime = (*Platform)(nil)

// OnInitDone registers the init-done callback. Boot runs it.
func (p *Platform) OnInitDone(fn func()) { p.initFn = fn }

// SetEventHandler registers the wireless event callback.
func (p *Platform) SetEventHandler(fn func(platform.Event)) { p.handler = fn }

// Yield records a yield. There is no other pending work to run.
func (p *Platform) Yield() { p.yields++ }

// GPIO returns the output bank.
func (p *Platform) GPIO() *GPIO { return &p.gpio }

// SoftAP returns the radio's softAP interface.
func (p *Platform) SoftAP() *SoftAP { return &p.ap }

// NewTimer allocates a disarmed timer bound to this platform's clock.
func (p *Platform) NewTimer() *Timer {
	t := &Timer{p: p}
	p.timers = append(p.timers, t)
	return t
}

// Boot completes bring-up and runs the init-done callback. It reports false
// if the platform already booted or nothing was registered.
func (p *Platform) Boot() bool {
	if p.booted {
		return false
	}
	p.booted = true
	if p.initFn == nil {
		return false
	}
	p.initFn()
	return true
}

// Deliver hands ev to the registered event handler. Events delivered before
// a handler exists are dropped, as on the radio, and Deliver reports false.
func (p *Platform) Deliver(ev platform.Event) bool {
	if p.handler == nil {
		p.dropped++
		return false
	}
	p.handler(ev)
	return true
}

// Advance moves simulated time forward by d, firing every timer schedule
// that falls due, in time order.
func (p *Platform) Advance(d Duration) {
	end := p.now + d
	for {
		t, idx := p.nextDue(end)
		if t == nil {
			break
		}
		s := &t.schedules[idx]
		p.now = s.due
		if s.repeat {
			s.due += s.interval
		} else {
			t.schedules = append(t.schedules[:idx], t.schedules[idx+1:]...)
		}
		t.fired++
		if t.fn != nil {
			t.fn()
		}
	}
	p.now = end
}

// nextDue returns the earliest schedule due at or before end. Ties go to the
// timer created first.
func (p *Platform) nextDue(end Duration) (*Timer, int) {
	var (
		best    *Timer
		bestIdx int
	)
	for _, t := range p.timers {
		for i, s := range t.schedules {
			if s.due > end {
				continue
			}
			if best == nil || s.due < best.schedules[bestIdx].due {
				best, bestIdx = t, i
			}
		}
	}
	return best, bestIdx
}

// Now returns the simulated time since power-on.
func (p *Platform) Now() Duration { return p.now }

// Booted reports whether Boot ran.
func (p *Platform) Booted() bool { return p.booted }

// Yields returns how many times a callback yielded.
func (p *Platform) Yields() int { return p.yields }

// Dropped returns how many events arrived with no handler registered.
func (p *Platform) Dropped() int { return p.dropped }
