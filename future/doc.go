// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package future contains the core types of poll-based cooperative
computation used throughout futurex: Future (a computation advanced by
repeated polls), Poll (the outcome of one poll), Context and Waker (how a
pending future asks to be polled again), and Option (a value which may
be absent).

A Future is driven by a host which calls Poll until the returned Poll is
ready. When a future is not ready it must arrange for the Waker carried
by the Context to be called once progress is possible, after which the
host polls again:

	p := f.Poll(cx)
	if v, ok := p.Value(); ok {
		...
	}

Futures are not the idiomatic way to express concurrency in Go, and this
package does not try to be a runtime. It provides only what is needed to
compose and drive futures: a handful of adapters (Done, Never, Func, Map,
and Go) and a minimal blocking driver, Block.

	v, err := future.Block(ctx, future.Go(func() int {
		return compute()
	}))
*/
package future
