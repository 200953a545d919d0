package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harveysanders/apblinky/platform"
)

func startLoop(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v", err)
		}
	})
}

// call runs fn on the dispatch goroutine and waits for it.
func call(t *testing.T, d *Dispatcher, fn func()) {
	t.Helper()
	done := make(chan struct{})
	d.queue <- func() {
		fn()
		close(done)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestPostOrder(t *testing.T) {
	d := New(8)
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if !d.Post(func() { got = append(got, i) }) {
			t.Fatal("Post failed on an empty queue")
		}
	}
	startLoop(t, d)
	call(t, d, func() {})
	for i, v := range got {
		if v != i {
			t.Fatalf("got %v", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestPostFullQueue(t *testing.T) {
	d := New(1)
	if !d.Post(func() {}) {
		t.Fatal("first Post failed")
	}
	if d.Post(func() {}) {
		t.Error("Post succeeded on a full queue")
	}
}

func TestInitDoneOnceThenEvents(t *testing.T) {
	d := New(0)
	var inits, events int
	d.OnInitDone(func() {
		inits++
		d.SetEventHandler(func(platform.Event) { events++ })
	})

	// Dropped: no handler yet.
	d.PostEvent(platform.Event{Tag: platform.EventSoftAPStationConnected})
	d.InitDone()
	d.InitDone()
	d.PostEvent(platform.Event{Tag: platform.EventSoftAPStationConnected})

	startLoop(t, d)
	call(t, d, func() {
		if inits != 1 {
			t.Errorf("inits = %d, want 1", inits)
		}
		if events != 1 {
			t.Errorf("events = %d, want 1", events)
		}
		if d.Dropped() != 1 {
			t.Errorf("Dropped() = %d, want 1", d.Dropped())
		}
	})
}

func TestTimerRepeatAndDisarm(t *testing.T) {
	d := New(0)
	startLoop(t, d)
	timer := d.NewTimer()

	var ticks atomic.Int32
	call(t, d, func() {
		timer.SetFunc(func() { ticks.Add(1) })
		timer.Arm(5*time.Millisecond, true)
	})

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d ticks", ticks.Load())
		}
		time.Sleep(time.Millisecond)
	}

	call(t, d, timer.Disarm)
	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	call(t, d, func() {})
	if got := ticks.Load(); got != stopped {
		t.Errorf("ticks went from %d to %d after Disarm", stopped, got)
	}
}

func TestTimerOneShot(t *testing.T) {
	d := New(0)
	startLoop(t, d)
	timer := d.NewTimer()

	fired := make(chan struct{}, 4)
	call(t, d, func() {
		timer.SetFunc(func() { fired <- struct{}{} })
		timer.Arm(time.Millisecond, false)
	})
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("one-shot timer did not fire")
	}
	time.Sleep(20 * time.Millisecond)
	if len(fired) != 0 {
		t.Errorf("one-shot timer fired %d more times", len(fired))
	}
	call(t, d, timer.Disarm)
}

func TestTimerDisarmStopsDoubleArm(t *testing.T) {
	d := New(0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	timer := d.NewTimer()
	var ticks atomic.Int32
	call(t, d, func() {
		timer.SetFunc(func() { ticks.Add(1) })
		timer.Arm(2*time.Millisecond, true)
		timer.Arm(2*time.Millisecond, true)
	})
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d ticks", ticks.Load())
		}
		time.Sleep(time.Millisecond)
	}
	call(t, d, func() {
		if timer.Active() != 2 {
			t.Errorf("Active() = %d, want 2", timer.Active())
		}
		timer.Disarm()
		if timer.Active() != 0 {
			t.Errorf("Active() = %d after Disarm", timer.Active())
		}
	})
	cancel()
	<-done

	// Each schedule may have one tick in flight; nothing more may follow.
	time.Sleep(40 * time.Millisecond)
	if n := len(d.queue); n > 2 {
		t.Errorf("%d ticks queued after Disarm", n)
	}
}
