// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package future

import "context"

// Block drives f to completion on the calling goroutine and returns its
// value. Between polls the goroutine waits until f's Waker is woken.
//
// If ctx ends before f completes, Block discards f and returns the zero
// value of T along with ctx.Err().
func Block[T any](ctx context.Context, f Future[T]) (T, error) {
	if f == nil {
		panic("future: nil future")
	}

	// One buffered slot coalesces any number of wakes between polls.
	wake := make(chan struct{}, 1)
	cx := NewContext(WakerFunc(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}))

	for {
		if v, ok := f.Poll(cx).Value(); ok {
			return v, nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			Discard(f)
			var zero T
			return zero, ctx.Err()
		}
	}
}
