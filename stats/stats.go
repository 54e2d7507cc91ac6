// Package stats registers, tracks, and exports client-side metrics:
// request and error counts, throttling events, and request latencies.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Tracker is the interface the api layer reports into. Implementations
// must be safe for concurrent use; a nil Tracker disables tracking.
type Tracker interface {
	IncRequest(section, action string)
	IncErr(section, action string)
	IncThrottled(section, action string)
	AddLatency(section, action string, d time.Duration)
}

const (
	namespace = "mws"
	subsystem = "client"
)

// variable labels
const (
	lblSection = "section"
	lblAction  = "action"
)

type Prom struct {
	requests  *prometheus.CounterVec
	errs      *prometheus.CounterVec
	throttled *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// interface guard
var _ Tracker = (*Prom)(nil)

// NewProm creates the tracker and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer unless running multiple clients in
// one process.
func NewProm(reg prometheus.Registerer) *Prom {
	labels := []string{lblSection, lblAction}
	p := &Prom{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "requests_total",
			Help: "Requests sent, by section and action.",
		}, labels),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "errors_total",
			Help: "Failed requests (transport errors and 4xx/5xx), by section and action.",
		}, labels),
		throttled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "throttled_total",
			Help: "Requests the service told us to back off on.",
		}, labels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "request_duration_seconds",
			Help:    "End-to-end request latency.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
	reg.MustRegister(p.requests, p.errs, p.throttled, p.latency)
	return p
}

func (p *Prom) IncRequest(section, action string) {
	p.requests.WithLabelValues(section, action).Inc()
}

func (p *Prom) IncErr(section, action string) {
	p.errs.WithLabelValues(section, action).Inc()
}

func (p *Prom) IncThrottled(section, action string) {
	p.throttled.WithLabelValues(section, action).Inc()
}

func (p *Prom) AddLatency(section, action string, d time.Duration) {
	p.latency.WithLabelValues(section, action).Observe(d.Seconds())
}
