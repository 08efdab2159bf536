// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the hailstone
// service.
//
// Metrics are exposed on /metrics and cover the sequence endpoint:
// request counts by status, computed sequence lengths, truncations, and
// request latency. All operations are thread-safe via Prometheus's
// internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all hailstone metrics.
const metricsNamespace = "hailstone"

// Subsystem for sequence computation metrics.
const sequenceSubsystem = "sequence"

// Status label values for RequestsTotal and RequestDurationSeconds.
const (
	StatusOK         = "ok"
	StatusBadRequest = "bad_request"
	StatusOverflow   = "overflow"
	StatusError      = "error"
)

// SequenceMetrics holds the Prometheus metrics for sequence requests.
// Initialize once at startup via NewSequenceMetrics.
type SequenceMetrics struct {
	// RequestsTotal counts sequence requests.
	// Labels: status (ok, bad_request, overflow, error)
	RequestsTotal *prometheus.CounterVec

	// TruncationsTotal counts responses cut off by the step cap.
	TruncationsTotal prometheus.Counter

	// SequenceLength observes the number of values per computed sequence.
	SequenceLength prometheus.Histogram

	// RequestDurationSeconds observes request handling latency.
	// Labels: status
	RequestDurationSeconds *prometheus.HistogramVec
}

// NewSequenceMetrics creates and registers the sequence metrics on reg.
// Pass prometheus.DefaultRegisterer in the service main and a fresh
// prometheus.NewRegistry() in tests.
func NewSequenceMetrics(reg prometheus.Registerer) *SequenceMetrics {
	factory := promauto.With(reg)

	return &SequenceMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sequenceSubsystem,
				Name:      "requests_total",
				Help:      "Total number of sequence requests by status",
			},
			[]string{"status"},
		),
		TruncationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sequenceSubsystem,
				Name:      "truncations_total",
				Help:      "Total number of sequences cut off by the step cap",
			},
		),
		SequenceLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: sequenceSubsystem,
				Name:      "length_values",
				Help:      "Number of values per computed sequence",
				Buckets:   []float64{2, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: sequenceSubsystem,
				Name:      "request_duration_seconds",
				Help:      "Sequence request handling latency in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"status"},
		),
	}
}

// ObserveRequest records one completed request.
func (m *SequenceMetrics) ObserveRequest(status string, seconds float64) {
	m.RequestsTotal.WithLabelValues(status).Inc()
	m.RequestDurationSeconds.WithLabelValues(status).Observe(seconds)
}

// ObserveSequence records a successfully computed sequence.
func (m *SequenceMetrics) ObserveSequence(length int, truncated bool) {
	m.SequenceLength.Observe(float64(length))
	if truncated {
		m.TruncationsTotal.Inc()
	}
}
