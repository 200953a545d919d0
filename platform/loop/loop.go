// Package loop provides a real-time callback runtime for boards without an
// SDK event loop. A single goroutine calling Run executes every callback;
// other goroutines (radio pollers, timers) only post work to it, so
// callbacks never overlap.
package loop

import (
	"context"
	"runtime"
	"sync"

	"github.com/harveysanders/apblinky/platform"
)

// DefaultQueueLen is the callback queue length used when New is given zero.
const DefaultQueueLen = 16

// Dispatcher is a platform.Runtime backed by a callback queue.
type Dispatcher struct {
	queue    chan func()
	initOnce sync.Once

	// Only touched from the dispatch goroutine once Run has started.
	initFn  func()
	handler func(platform.Event)
	dropped int
}

var _ platform.Runtime = (*Dispatcher)(nil)

// New returns a dispatcher with room for queueLen pending callbacks.
func New(queueLen int) *Dispatcher {
	if queueLen <= 0 {
		queueLen = DefaultQueueLen
	}
	return &Dispatcher{queue: make(chan func(), queueLen)}
}

// OnInitDone registers fn. Call it before InitDone.
func (d *Dispatcher) OnInitDone(fn func()) { d.initFn = fn }

// SetEventHandler registers the wireless event callback. It must be called
// from a callback.
func (d *Dispatcher) SetEventHandler(fn func(platform.Event)) { d.handler = fn }

// Yield lets other goroutines run. TinyGo schedules goroutines
// cooperatively on a single core.
func (d *Dispatcher) Yield() { runtime.Gosched() }

// InitDone queues the init-done callback. Only the first call has effect.
// Boards call it when bring-up has finished.
func (d *Dispatcher) InitDone() {
	d.initOnce.Do(func() {
		d.queue <- func() {
			if d.initFn != nil {
				d.initFn()
			}
		}
	})
}

// PostEvent queues ev for the event handler without blocking. It reports
// false when the queue is full.
func (d *Dispatcher) PostEvent(ev platform.Event) bool {
	return d.Post(func() {
		if d.handler == nil {
			d.dropped++
			return
		}
		d.handler(ev)
	})
}

// Post queues fn without blocking. It reports false when the queue is full.
func (d *Dispatcher) Post(fn func()) bool {
	select {
	case d.queue <- fn:
		return true
	default:
		return false
	}
}

// Dropped returns how many events were discarded because no handler was
// registered. It must be called from a callback.
func (d *Dispatcher) Dropped() int { return d.dropped }

// Run executes queued callbacks one at a time until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-d.queue:
			fn()
		}
	}
}
