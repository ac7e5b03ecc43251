// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package future

// A Future is an asynchronous computation producing a value of type T.
//
// Poll advances the computation. It must not block. If the computation
// has finished, Poll returns a ready Poll holding the result. Otherwise
// it returns a pending Poll, and before returning it must arrange for
// cx.Waker() to be woken once the computation may be able to make
// progress. The most recent Context passed to Poll is the one whose
// Waker should be woken.
//
// Once a Future has returned a ready Poll it must not be polled again.
type Future[T any] interface {
	Poll(cx *Context) Poll[T]
}

// The Func type is an adapter to allow the use of ordinary functions as
// futures. If f is a function with appropriate signature, Func(f) is a
// Future that calls f.
type Func[T any] func(cx *Context) Poll[T]

// Poll calls f(cx).
func (f Func[T]) Poll(cx *Context) Poll[T] {
	return f(cx)
}

// A Discarder is a Future which holds resources that can be released
// early if the future is abandoned before it completes.
//
// Discard must not block and must be safe to call more than once. After
// Discard the future is never polled again.
type Discarder interface {
	Discard()
}

// Discard calls Discard on f if f implements Discarder, and does
// nothing otherwise.
func Discard(f interface{}) {
	if d, ok := f.(Discarder); ok {
		d.Discard()
	}
}

// Poll is the outcome of polling a Future: either ready with a value,
// or pending. The zero value is pending.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a ready Poll holding v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a pending Poll.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether p is ready.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// IsPending reports whether p is pending.
func (p Poll[T]) IsPending() bool {
	return !p.ready
}

// Value returns the value held by p and true if p is ready, or the zero
// value of T and false if p is pending.
func (p Poll[T]) Value() (T, bool) {
	return p.value, p.ready
}

// A Waker is notified when a pending future may be able to make
// progress. Wake must be safe for concurrent use by multiple goroutines
// and may be called any number of times.
type Waker interface {
	Wake()
}

// The WakerFunc type is an adapter to allow the use of ordinary
// functions as wakers.
type WakerFunc func()

// Wake calls f().
func (f WakerFunc) Wake() {
	f()
}

var noopWaker = WakerFunc(func() {})

// A Context carries the Waker a pending future must wake.
type Context struct {
	waker Waker
}

// NewContext returns a Context carrying w. If w is nil, the Context
// carries a Waker that does nothing.
func NewContext(w Waker) *Context {
	if w == nil {
		w = noopWaker
	}
	return &Context{waker: w}
}

// Waker returns the Waker carried by cx. It never returns nil.
func (cx *Context) Waker() Waker {
	if cx == nil || cx.waker == nil {
		return noopWaker
	}
	return cx.waker
}
