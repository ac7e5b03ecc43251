// Copyright 2026 The futurex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics provides a futurex event handler which records
// Prometheus metrics about Timeout outcomes.
package metrics

import (
	"github.com/gogama/futurex"
	"github.com/prometheus/client_golang/prometheus"
)

// A Handler records one observation per ended Timeout execution:
//
//	<namespace>_timeouts_total{outcome}      counter
//	<namespace>_timeout_polls                 histogram
//	<namespace>_timeout_elapsed_seconds       histogram
//
// Install it for AfterComplete, AfterExpire and AfterDiscard (see
// Install). Other events are ignored.
type Handler struct {
	outcomes *prometheus.CounterVec
	polls    prometheus.Histogram
	elapsed  prometheus.Histogram
}

// NewHandler creates a Handler and registers its collectors with reg.
// If reg is nil, prometheus.DefaultRegisterer is used. Registration
// errors are returned unchanged.
func NewHandler(reg prometheus.Registerer, namespace string) (*Handler, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	h := &Handler{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "timeouts_total",
				Help:      "Total number of ended timeouts by outcome.",
			},
			[]string{"outcome"},
		),
		polls: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "timeout_polls",
				Help:      "Number of polls before a timeout ended.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		elapsed: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "timeout_elapsed_seconds",
				Help:      "Time from timeout creation to its end, in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	for _, c := range []prometheus.Collector{h.outcomes, h.polls, h.elapsed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Pre-initialize outcome labels so they are exported with value 0.
	for _, o := range []futurex.Outcome{futurex.Complete, futurex.Expire, futurex.Discarded} {
		h.outcomes.WithLabelValues(o.String())
	}

	return h, nil
}

// Install adds h to g for every event that ends an execution.
func (h *Handler) Install(g *futurex.HandlerGroup) {
	g.PushBack(futurex.AfterComplete, h)
	g.PushBack(futurex.AfterExpire, h)
	g.PushBack(futurex.AfterDiscard, h)
}

// Handle records e if it has ended.
func (h *Handler) Handle(_ futurex.Event, e *futurex.Execution) {
	if !e.Ended() {
		return
	}
	h.outcomes.WithLabelValues(e.Outcome.String()).Inc()
	h.polls.Observe(float64(e.Polls))
	h.elapsed.Observe(e.Elapsed().Seconds())
}
