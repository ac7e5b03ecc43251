// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

// A HandlerGroup is a group of event handler chains which can be
// installed in a Config.
//
// A HandlerGroup may be shared by many Timeouts, but it must not be
// modified while any of them is being polled.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("futurex: nil handler")
	}
	if evt < 0 || int(evt) >= numEvents {
		panic("futurex: unknown event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, e *Execution) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, e)
	}
}

func run(chain []Handler, evt Event, e *Execution) {
	for _, h := range chain {
		h.Handle(evt, e)
	}
}

// A Handler handles the occurrence of an event while polling a Timeout.
//
// Handlers run on the goroutine polling the Timeout and must not block.
// The execution is only valid for the duration of the call, and
// handlers must not modify it.
//
// A handler must not call Poll on the Timeout it observes. It may call
// Discard from an AfterPending handler, for example to cap the number
// of polls: the Timeout then ends with outcome Discarded, the
// AfterDiscard chain runs before Poll returns, and Poll still returns a
// pending Poll. The caller must not poll the Timeout again. Calling
// Discard from any other event is either a no-op (the execution has
// already ended) or discards the Timeout mid-poll; neither is useful.
type Handler interface {
	Handle(Event, *Execution)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *Execution) {
	f(evt, e)
}
