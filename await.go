// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

import (
	"context"
	"time"

	"github.com/gogama/futurex/future"
)

// ErrExpired is the error Await returns when the deadline passes before
// the inner future completes. Its Timeout method reports true.
var ErrExpired error = expired{}

type expired struct{}

func (expired) Error() string {
	return "futurex: timeout expired"
}

func (expired) Timeout() bool {
	return true
}

// Await drives t to completion on the calling goroutine using
// future.Block. It returns the inner value if the inner future won, and
// ErrExpired if the deadline passed first. If ctx ends first, t is
// discarded and ctx.Err() is returned.
func Await[T any](ctx context.Context, t *Timeout[T]) (T, error) {
	o, err := future.Block[future.Option[T]](ctx, t)
	if err != nil {
		var zero T
		return zero, err
	}
	if v, ok := o.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, ErrExpired
}

// Within attaches a timeout of duration d to f and awaits the result.
// It is shorthand for Await(ctx, WithTimeout(f, d)).
func Within[T any](ctx context.Context, f future.Future[T], d time.Duration) (T, error) {
	return Await(ctx, WithTimeout(f, d))
}
