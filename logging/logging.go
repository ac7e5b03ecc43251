// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides a futurex event handler which writes
// structured logrus entries describing Timeout progress.
//
// Install the handler for the events you care about:
//
//	h := logging.NewHandler(logrus.StandardLogger())
//	handlers := &futurex.HandlerGroup{}
//	for _, evt := range futurex.Events() {
//		handlers.PushBack(evt, h)
//	}
package logging

import (
	"github.com/gogama/futurex"
	"github.com/sirupsen/logrus"
)

// Field names used on every entry.
const (
	FieldEvent   = "event"
	FieldTimeout = "timeout"
	FieldPolls   = "polls"
	FieldElapsed = "elapsed"
	FieldOutcome = "outcome"
)

// NewHandler returns a handler which logs each event it handles to l.
//
// BeforePoll and AfterPending are logged at debug level, AfterComplete
// at info level, and AfterExpire and AfterDiscard at warn level.
func NewHandler(l logrus.FieldLogger) futurex.Handler {
	if l == nil {
		panic("futurex/logging: nil logger")
	}
	return handler{l}
}

type handler struct {
	log logrus.FieldLogger
}

func (h handler) Handle(evt futurex.Event, e *futurex.Execution) {
	entry := h.log.WithFields(logrus.Fields{
		FieldEvent:   evt.Name(),
		FieldTimeout: e.Timeout,
		FieldPolls:   e.Polls,
	})
	if e.Ended() {
		entry = entry.WithFields(logrus.Fields{
			FieldElapsed: e.Elapsed(),
			FieldOutcome: e.Outcome.String(),
		})
	}

	switch evt {
	case futurex.BeforePoll:
		entry.Debug("polling timeout")
	case futurex.AfterPending:
		entry.Debug("timeout pending")
	case futurex.AfterComplete:
		entry.Info("completed before deadline")
	case futurex.AfterExpire:
		entry.Warn("deadline expired")
	case futurex.AfterDiscard:
		entry.Warn("timeout discarded")
	}
}
