// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

import "fmt"

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Config to observe the progress
// of a Timeout.
type Event int

const (
	// BeforePoll identifies the event that occurs at the start of each
	// poll, before the inner future is polled.
	//
	// When Timeout fires BeforePoll, the execution's poll counter
	// already includes the current poll.
	BeforePoll Event = iota
	// AfterPending identifies the event that occurs after a poll in
	// which neither the inner future nor the deadline timer was ready.
	AfterPending
	// AfterComplete identifies the event that occurs after the inner
	// future completed before the deadline.
	//
	// When Timeout fires AfterComplete, the execution has ended and its
	// outcome is Complete.
	AfterComplete
	// AfterExpire identifies the event that occurs after the deadline
	// timer fired before the inner future completed.
	//
	// When Timeout fires AfterExpire, the execution has ended and its
	// outcome is Expire.
	AfterExpire
	// AfterDiscard identifies the event that occurs after a Timeout is
	// discarded before reaching a result.
	AfterDiscard
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforePoll",
	"AfterPending",
	"AfterComplete",
	"AfterExpire",
	"AfterDiscard",
}

// Events returns a slice containing all events which can occur while
// polling a Timeout.
func Events() []Event {
	return []Event{
		BeforePoll,
		AfterPending,
		AfterComplete,
		AfterExpire,
		AfterDiscard,
	}
}

// Name returns the name of the event. For a value which is not one of
// the defined events, Name returns "Event(n)".
func (evt Event) Name() string {
	if evt < 0 || int(evt) >= numEvents {
		return fmt.Sprintf("Event(%d)", int(evt))
	}
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
