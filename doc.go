// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package futurex attaches timeouts to poll-based futures.

Wrap any future.Future with a duration to get a future whose result is
the inner future's value, if it completes in time, or an explicit
expiry signal if the deadline passes first:

	f := futurex.WithTimeout(future.Go(fetch), 250*time.Millisecond)
	o, err := future.Block(ctx, f)
	...
	if v, ok := o.Get(); ok {
		// fetch finished within 250ms and returned v.
	} else {
		// The deadline passed first.
	}

Expiry is not an error. The wrapper resolves to future.Some(v) or to
future.None, and any failure the inner future encodes in its own result
type passes through untouched. Callers who prefer an error can use
Await, which reports expiry as ErrExpired.

On every poll the inner future is polled before the deadline timer, so
if both are ready in the same poll the inner value wins. Once either
side finishes the other is discarded and never polled again.

For control over the clock driving the deadline, or to hook into each
poll, use New with a Config:

	clock := clockwork.NewFakeClock()
	handlers := &futurex.HandlerGroup{}
	handlers.PushBack(futurex.AfterExpire, logging.NewHandler(log))
	f := futurex.New(inner, time.Second, &futurex.Config{
		Clock:    clock,
		Handlers: handlers,
	})

Packages logging and metrics provide ready-made handlers which write
logrus entries and record Prometheus metrics.
*/
package futurex
