// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timer adapts the timers of a clockwork.Clock into futures. A
// Timer completes, with no meaningful payload, once its duration has
// elapsed on its clock.
//
// Timer accuracy is the clock's contract. Use clockwork.NewRealClock for
// wall-clock timers, and clockwork.NewFakeClock to drive timers
// deterministically in tests.
package timer

import (
	"sync"
	"time"

	"github.com/gogama/futurex/future"
	"github.com/jonboulle/clockwork"
)

// Infinite is the duration of a Timer which never fires.
const Infinite = time.Duration(1<<63 - 1)

// A Timer is a future.Future which becomes ready once a duration has
// elapsed since the Timer was created.
//
// The clock fires the Timer on its own goroutine, so a Timer may be
// polled and fired concurrently. Firing wakes the Waker of the most
// recent pending poll.
type Timer struct {
	lock      sync.Mutex
	fired     bool
	discarded bool
	waker     future.Waker
	alarm     clockwork.Timer
}

// After starts a Timer which fires once d has elapsed on clock. If clock
// is nil, the real clock is used.
//
// A Timer with a duration of zero or less is ready on its first poll. A
// Timer with duration Infinite never fires and holds no clock timer.
func After(clock clockwork.Clock, d time.Duration) *Timer {
	t := &Timer{}
	switch {
	case d <= 0:
		t.fired = true
	case d == Infinite:
	default:
		if clock == nil {
			clock = clockwork.NewRealClock()
		}
		t.alarm = clock.AfterFunc(d, t.fire)
	}
	return t
}

func (t *Timer) fire() {
	t.lock.Lock()
	t.fired = true
	w := t.waker
	t.waker = nil
	discarded := t.discarded
	t.lock.Unlock()
	if w != nil && !discarded {
		w.Wake()
	}
}

// Poll returns a ready Poll once the Timer has fired. Otherwise it
// records cx's Waker to be woken when the Timer fires and returns a
// pending Poll.
func (t *Timer) Poll(cx *future.Context) future.Poll[struct{}] {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.fired {
		return future.Ready(struct{}{})
	}
	if !t.discarded {
		t.waker = cx.Waker()
	}
	return future.Pending[struct{}]()
}

// Fired reports whether the Timer has fired.
func (t *Timer) Fired() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.fired
}

// Discard stops the underlying clock timer, if any, and releases the
// recorded Waker. It never blocks.
func (t *Timer) Discard() {
	t.lock.Lock()
	if t.discarded {
		t.lock.Unlock()
		return
	}
	t.discarded = true
	t.waker = nil
	c := t.alarm
	t.alarm = nil
	t.lock.Unlock()
	if c != nil {
		c.Stop()
	}
}
