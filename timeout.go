// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

import (
	"time"

	"github.com/gogama/futurex/future"
	"github.com/gogama/futurex/timer"
	"github.com/jonboulle/clockwork"
)

// Infinite is a timeout duration which never expires.
const Infinite = timer.Infinite

var emptyHandlers = HandlerGroup{}

// A Config holds optional settings for New. Its zero value, and a nil
// Config, are valid configurations.
//
// A Config may be shared across any number of calls to New.
type Config struct {
	// Clock is the clock the deadline timer runs on.
	//
	// If Clock is nil, clockwork.NewRealClock() is used.
	Clock clockwork.Clock
	// Handlers allows custom handler chains to be invoked when
	// designated events occur while polling the Timeout.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// A Timeout is a future which races an inner future against a deadline
// timer. It becomes ready with future.Some(v) if the inner future
// completes with v first, and with future.None if the timer fires first.
//
// A Timeout exclusively owns its inner future and its timer. It is not
// safe for concurrent use: poll it from one goroutine at a time.
type Timeout[T any] struct {
	inner    future.Future[T]
	timer    *timer.Timer
	clock    clockwork.Clock
	handlers *HandlerGroup
	exec     Execution
}

// WithTimeout attaches a timeout of duration d to f using the real
// clock and no event handlers. The deadline timer starts immediately.
//
// A duration of zero or less expires on the first poll unless f is
// ready on that poll.
func WithTimeout[T any](f future.Future[T], d time.Duration) *Timeout[T] {
	return New(f, d, nil)
}

// New attaches a timeout of duration d to f following the settings in
// c, which may be nil. The deadline timer starts immediately.
func New[T any](f future.Future[T], d time.Duration, c *Config) *Timeout[T] {
	if f == nil {
		panic("futurex: nil future")
	}
	if c == nil {
		c = &Config{}
	}

	clock := c.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	return &Timeout[T]{
		inner:    f,
		timer:    timer.After(clock, d),
		clock:    clock,
		handlers: handlers,
		exec: Execution{
			Timeout: d,
			Start:   clock.Now(),
		},
	}
}

// Poll polls the inner future and then, only if the inner future is
// not ready, the deadline timer. Whichever is ready first decides the
// result and the other is discarded. If neither is ready, both have
// registered cx's Waker and Poll returns a pending Poll.
//
// Poll panics if called after the Timeout has produced its result or
// been discarded.
func (t *Timeout[T]) Poll(cx *future.Context) future.Poll[future.Option[T]] {
	if t.exec.Ended() {
		panic("futurex: poll after completion")
	}

	t.exec.Polls++
	t.handlers.run(BeforePoll, &t.exec)

	if v, ok := t.inner.Poll(cx).Value(); ok {
		t.inner = nil
		t.end(Complete)
		t.handlers.run(AfterComplete, &t.exec)
		return future.Ready(future.Some(v))
	}

	if t.timer.Poll(cx).IsReady() {
		t.timer = nil
		t.end(Expire)
		t.handlers.run(AfterExpire, &t.exec)
		return future.Ready(future.None[T]())
	}

	t.handlers.run(AfterPending, &t.exec)
	return future.Pending[future.Option[T]]()
}

// Discard abandons the Timeout before it produces a result, discarding
// both the inner future and the deadline timer. It does nothing if the
// Timeout has already ended.
func (t *Timeout[T]) Discard() {
	if t.exec.Ended() {
		return
	}
	t.end(Discarded)
	t.handlers.run(AfterDiscard, &t.exec)
}

// Execution returns a snapshot of the Timeout's progress.
func (t *Timeout[T]) Execution() Execution {
	return t.exec
}

func (t *Timeout[T]) end(o Outcome) {
	t.exec.Outcome = o
	t.exec.End = t.clock.Now()
	if t.inner != nil {
		future.Discard(t.inner)
		t.inner = nil
	}
	if t.timer != nil {
		t.timer.Discard()
		t.timer = nil
	}
}
