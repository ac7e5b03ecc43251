// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package future

import "fmt"

// An Option holds either a value of type T (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an Option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o holds nothing.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value held by o and true, or the zero value of T and
// false if o is None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the value held by o, or v if o is None.
func (o Option[T]) OrElse(v T) T {
	if o.some {
		return o.value
	}
	return v
}

// String returns "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
