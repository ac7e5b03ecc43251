// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package future

import "sync"

// Done returns a Future which is ready with v on its first poll.
func Done[T any](v T) Future[T] {
	return Func[T](func(_ *Context) Poll[T] {
		return Ready(v)
	})
}

// Never returns a Future which never completes.
func Never[T any]() Future[T] {
	return Func[T](func(_ *Context) Poll[T] {
		return Pending[T]()
	})
}

// Map returns a Future which polls f and, once f is ready with v, is
// ready with fn(v). Discarding the returned future discards f.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	if f == nil {
		panic("future: nil future")
	}
	if fn == nil {
		panic("future: nil map function")
	}
	return &mapped[T, U]{f: f, fn: fn}
}

type mapped[T, U any] struct {
	f  Future[T]
	fn func(T) U
}

func (m *mapped[T, U]) Poll(cx *Context) Poll[U] {
	v, ok := m.f.Poll(cx).Value()
	if !ok {
		return Pending[U]()
	}
	m.f = nil
	return Ready(m.fn(v))
}

func (m *mapped[T, U]) Discard() {
	if m.f != nil {
		Discard(m.f)
		m.f = nil
	}
}

// Go starts fn on a new goroutine and returns a Future which becomes
// ready with fn's return value. The Waker of the most recent poll is
// woken when fn returns.
//
// Discarding the returned future does not stop fn. It only ensures no
// waker is retained; use a context inside fn for cooperative
// cancellation.
func Go[T any](fn func() T) Future[T] {
	if fn == nil {
		panic("future: nil function")
	}
	g := &goroutine[T]{}
	go g.run(fn)
	return g
}

type goroutine[T any] struct {
	lock  sync.Mutex
	value T
	done  bool
	waker Waker
}

func (g *goroutine[T]) run(fn func() T) {
	v := fn()
	g.lock.Lock()
	g.value = v
	g.done = true
	w := g.waker
	g.waker = nil
	g.lock.Unlock()
	if w != nil {
		w.Wake()
	}
}

func (g *goroutine[T]) Poll(cx *Context) Poll[T] {
	g.lock.Lock()
	defer g.lock.Unlock()
	if g.done {
		return Ready(g.value)
	}
	g.waker = cx.Waker()
	return Pending[T]()
}

func (g *goroutine[T]) Discard() {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.waker = nil
}
