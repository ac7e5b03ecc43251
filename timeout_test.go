// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogama/futurex/future"
	"github.com/gogama/futurex/timer"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTimeout(t *testing.T) {
	t.Run("success before deadline", testTimeoutSuccessBeforeDeadline)
	t.Run("deadline before success", testTimeoutDeadlineBeforeSuccess)
	t.Run("immediately ready", testTimeoutImmediatelyReady)
	t.Run("never completes", testTimeoutNeverCompletes)
	t.Run("tie-break", testTimeoutTieBreak)
	t.Run("no double reporting", testTimeoutNoDoubleReporting)
	t.Run("pass-through", testTimeoutPassThrough)
	t.Run("discard", testTimeoutDiscard)
	t.Run("infinite", testTimeoutInfinite)
	t.Run("events", testTimeoutEvents)
	t.Run("block", testTimeoutBlock)
	t.Run("nil future", testTimeoutNilFuture)
}

func testTimeoutSuccessBeforeDeadline(t *testing.T) {
	clock := clockwork.NewFakeClock()
	start := clock.Now()
	inner := future.Map[struct{}, int](timer.After(clock, 100*time.Millisecond), func(struct{}) int { return 42 })
	to := New(inner, 250*time.Millisecond, &Config{Clock: clock})
	w := newWakeRecorder()
	cx := future.NewContext(w)

	require.True(t, to.Poll(cx).IsPending())
	clock.Advance(100 * time.Millisecond)
	w.wait(t)

	o, ok := to.Poll(cx).Value()
	require.True(t, ok)
	assert.Equal(t, future.Some(42), o)
	e := to.Execution()
	assert.Equal(t, Complete, e.Outcome)
	assert.Equal(t, 2, e.Polls)
	assert.Equal(t, 250*time.Millisecond, e.Timeout)
	assert.Equal(t, start, e.Start)
	assert.Equal(t, 100*time.Millisecond, e.Elapsed())
}

func testTimeoutDeadlineBeforeSuccess(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := future.Map[struct{}, int](timer.After(clock, 250*time.Millisecond), func(struct{}) int { return 24 })
	to := New(inner, 100*time.Millisecond, &Config{Clock: clock})
	w := newWakeRecorder()
	cx := future.NewContext(w)

	require.True(t, to.Poll(cx).IsPending())
	clock.Advance(100 * time.Millisecond)
	w.wait(t)

	o, ok := to.Poll(cx).Value()
	require.True(t, ok)
	assert.True(t, o.IsNone())
	e := to.Execution()
	assert.Equal(t, Expire, e.Outcome)
	assert.Equal(t, 100*time.Millisecond, e.Elapsed())
}

func testTimeoutImmediatelyReady(t *testing.T) {
	for _, d := range []time.Duration{time.Nanosecond, time.Millisecond, time.Hour, Infinite} {
		t.Run(d.String(), func(t *testing.T) {
			to := WithTimeout(future.Done(7), d)
			o, ok := to.Poll(future.NewContext(nil)).Value()
			require.True(t, ok)
			assert.Equal(t, future.Some(7), o)
			assert.Equal(t, 1, to.Execution().Polls)
		})
	}
}

func testTimeoutNeverCompletes(t *testing.T) {
	p := &stub[int]{}
	before := time.Now()
	o, err := future.Block[future.Option[int]](context.Background(), WithTimeout[int](p, 50*time.Millisecond))
	elapsed := time.Since(before)

	require.NoError(t, err)
	assert.True(t, o.IsNone())
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	polls := p.polls
	assert.GreaterOrEqual(t, polls, 1)
	assert.Equal(t, 1, p.discards)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, polls, p.polls, "inner future polled after expiry")
}

func testTimeoutTieBreak(t *testing.T) {
	t.Run("both ready after wake", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		p := &stub[int]{value: 9}
		to := New[int](p, 10*time.Millisecond, &Config{Clock: clock})
		w := newWakeRecorder()
		cx := future.NewContext(w)

		require.True(t, to.Poll(cx).IsPending())
		clock.Advance(10 * time.Millisecond)
		w.wait(t)
		p.ready = true

		o, ok := to.Poll(cx).Value()
		require.True(t, ok)
		assert.Equal(t, future.Some(9), o)
		assert.Equal(t, 0, p.discards)
	})
	t.Run("zero duration", func(t *testing.T) {
		to := WithTimeout(future.Done(7), 0)
		o, ok := to.Poll(future.NewContext(nil)).Value()
		require.True(t, ok)
		assert.Equal(t, future.Some(7), o)
	})
	t.Run("negative duration", func(t *testing.T) {
		p := &stub[int]{}
		to := WithTimeout[int](p, -time.Second)
		o, ok := to.Poll(future.NewContext(nil)).Value()
		require.True(t, ok)
		assert.True(t, o.IsNone())
		assert.Equal(t, 1, p.polls, "inner future must be polled before the timer")
	})
}

func testTimeoutNoDoubleReporting(t *testing.T) {
	t.Run("after complete", func(t *testing.T) {
		p := &stub[string]{value: "x", ready: true}
		to := WithTimeout[string](p, time.Hour)
		require.True(t, to.Poll(future.NewContext(nil)).IsReady())
		assert.PanicsWithValue(t, "futurex: poll after completion", func() {
			to.Poll(future.NewContext(nil))
		})
		assert.Equal(t, 1, p.polls)
	})
	t.Run("after expire", func(t *testing.T) {
		p := &stub[string]{}
		to := WithTimeout[string](p, 0)
		require.True(t, to.Poll(future.NewContext(nil)).IsReady())
		assert.PanicsWithValue(t, "futurex: poll after completion", func() {
			to.Poll(future.NewContext(nil))
		})
		p.ready = true
		assert.Equal(t, 1, p.polls)
		assert.Equal(t, 1, p.discards)
	})
}

func testTimeoutPassThrough(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		x := &struct{ n int }{n: 1}
		to := WithTimeout(future.Done(x), time.Hour)
		o, ok := to.Poll(future.NewContext(nil)).Value()
		require.True(t, ok)
		v, ok := o.Get()
		require.True(t, ok)
		assert.Same(t, x, v)
	})
	t.Run("inner failure", func(t *testing.T) {
		type result struct {
			n   int
			err error
		}
		err := errors.New("inner failure")
		to := WithTimeout(future.Done(result{err: err}), time.Hour)
		o, ok := to.Poll(future.NewContext(nil)).Value()
		require.True(t, ok)
		v, ok := o.Get()
		require.True(t, ok)
		assert.Same(t, err, v.err)
	})
}

func testTimeoutDiscard(t *testing.T) {
	t.Run("before completion", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		p := &stub[int]{}
		h := &mockHandler{}
		h.Test(t)
		h.On("Handle", AfterDiscard, mock.MatchedBy(func(e *Execution) bool {
			return e.Outcome == Discarded && e.Ended()
		})).Once()
		g := &HandlerGroup{}
		g.PushBack(AfterDiscard, h)
		to := New[int](p, time.Minute, &Config{Clock: clock, Handlers: g})
		w := newWakeRecorder()
		require.True(t, to.Poll(future.NewContext(w)).IsPending())

		to.Discard()
		to.Discard()

		h.AssertExpectations(t)
		assert.Equal(t, 1, p.discards)
		assert.Equal(t, Discarded, to.Execution().Outcome)
		clock.Advance(time.Minute)
		w.assertNoWake(t, 20*time.Millisecond)
		assert.PanicsWithValue(t, "futurex: poll after completion", func() {
			to.Poll(future.NewContext(nil))
		})
	})
	t.Run("from AfterPending handler", func(t *testing.T) {
		p := &stub[int]{}
		var to *Timeout[int]
		var trace []string
		g := &HandlerGroup{}
		g.PushBack(AfterPending, HandlerFunc(func(evt Event, e *Execution) {
			trace = append(trace, evt.Name())
			if e.Polls == 2 {
				to.Discard()
			}
		}))
		g.PushBack(AfterDiscard, HandlerFunc(func(evt Event, e *Execution) {
			trace = append(trace, evt.Name()+":"+e.Outcome.String())
		}))
		to = New[int](p, time.Minute, &Config{Clock: clockwork.NewFakeClock(), Handlers: g})
		cx := future.NewContext(nil)

		require.True(t, to.Poll(cx).IsPending())
		assert.Equal(t, Running, to.Execution().Outcome)
		require.True(t, to.Poll(cx).IsPending())

		assert.Equal(t, []string{"AfterPending", "AfterPending", "AfterDiscard:discarded"}, trace)
		assert.Equal(t, Discarded, to.Execution().Outcome)
		assert.Equal(t, 1, p.discards)
		assert.Equal(t, 2, p.polls)
		assert.PanicsWithValue(t, "futurex: poll after completion", func() {
			to.Poll(cx)
		})
	})
	t.Run("after completion", func(t *testing.T) {
		p := &stub[int]{ready: true}
		to := WithTimeout[int](p, time.Minute)
		require.True(t, to.Poll(future.NewContext(nil)).IsReady())
		to.Discard()
		assert.Equal(t, Complete, to.Execution().Outcome)
		assert.Equal(t, 0, p.discards)
	})
}

func testTimeoutInfinite(t *testing.T) {
	clock := clockwork.NewFakeClock()
	to := New(future.Never[int](), Infinite, &Config{Clock: clock})
	cx := future.NewContext(nil)
	require.True(t, to.Poll(cx).IsPending())
	clock.Advance(100000 * time.Hour)
	assert.True(t, to.Poll(cx).IsPending())
	e := to.Execution()
	assert.False(t, e.Ended())
	assert.Equal(t, time.Duration(0), e.Elapsed())
}

func testTimeoutEvents(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := &stub[int]{value: 3}
	var trace []string
	g := &HandlerGroup{}
	for _, evt := range Events() {
		g.PushBack(evt, HandlerFunc(func(evt Event, e *Execution) {
			trace = append(trace, evt.Name()+"/"+e.Outcome.String())
		}))
	}
	to := New[int](p, time.Second, &Config{Clock: clock, Handlers: g})
	cx := future.NewContext(nil)

	require.True(t, to.Poll(cx).IsPending())
	require.True(t, to.Poll(cx).IsPending())
	p.ready = true
	require.True(t, to.Poll(cx).IsReady())

	assert.Equal(t, []string{
		"BeforePoll/running",
		"AfterPending/running",
		"BeforePoll/running",
		"AfterPending/running",
		"BeforePoll/running",
		"AfterComplete/complete",
	}, trace)
}

func testTimeoutBlock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	inner := future.Map[struct{}, int](timer.After(clock, 250*time.Millisecond), func(struct{}) int { return 24 })
	to := New(inner, 100*time.Millisecond, &Config{Clock: clock})
	result := make(chan future.Option[int], 1)
	go func() {
		o, _ := future.Block[future.Option[int]](context.Background(), to)
		result <- o
	}()

	clock.Advance(100 * time.Millisecond)
	select {
	case o := <-result:
		assert.True(t, o.IsNone())
	case <-time.After(5 * time.Second):
		t.Fatal("timeout never resolved")
	}
}

func testTimeoutNilFuture(t *testing.T) {
	assert.PanicsWithValue(t, "futurex: nil future", func() {
		WithTimeout[int](nil, time.Second)
	})
}

type stub[T any] struct {
	value    T
	ready    bool
	polls    int
	discards int
}

func (p *stub[T]) Poll(_ *future.Context) future.Poll[T] {
	p.polls++
	if p.ready {
		return future.Ready(p.value)
	}
	return future.Pending[T]()
}

func (p *stub[T]) Discard() {
	p.discards++
}

type wakeRecorder struct {
	c chan struct{}
}

func newWakeRecorder() *wakeRecorder {
	return &wakeRecorder{c: make(chan struct{}, 16)}
}

func (w *wakeRecorder) Wake() {
	select {
	case w.c <- struct{}{}:
	default:
	}
}

func (w *wakeRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-w.c:
	case <-time.After(5 * time.Second):
		t.Fatal("waker never woken")
	}
}

func (w *wakeRecorder) assertNoWake(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case <-w.c:
		t.Error("unexpected wake")
	case <-time.After(d):
	}
}

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(evt Event, e *Execution) {
	m.Called(evt, e)
}
