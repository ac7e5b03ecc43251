// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package futurex

import (
	"fmt"
	"time"
)

// An Outcome is the final state of a Timeout execution.
type Outcome int

const (
	// Running means the execution has not ended.
	Running Outcome = iota
	// Complete means the inner future finished before the deadline.
	Complete
	// Expire means the deadline passed before the inner future
	// finished.
	Expire
	// Discarded means the Timeout was abandoned before either side
	// finished.
	Discarded
)

var outcomeNames = []string{
	"running",
	"complete",
	"expire",
	"discarded",
}

// String returns the lower-case name of the outcome. For a value which
// is not one of the defined outcomes, String returns "Outcome(n)".
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[int(o)]
}

// An Execution describes the progress of a Timeout. It is passed to
// event handlers and may be retrieved from Timeout.Execution.
//
// Times are read from the clock configured on the Timeout.
type Execution struct {
	// Timeout is the duration of the deadline timer.
	Timeout time.Duration
	// Start is the time the Timeout, and its deadline timer, were
	// created.
	Start time.Time
	// End is the time the execution ended. It is the zero value until
	// the outcome is other than Running.
	End time.Time
	// Polls is the number of times the Timeout has been polled.
	Polls int
	// Outcome is the final state of the execution, or Running.
	Outcome Outcome
}

// Ended reports whether the execution has ended.
func (e *Execution) Ended() bool {
	return e.Outcome != Running
}

// Elapsed returns the time between the start and end of the execution,
// or zero if the execution has not ended.
func (e *Execution) Elapsed() time.Duration {
	if !e.Ended() {
		return 0
	}
	return e.End.Sub(e.Start)
}
