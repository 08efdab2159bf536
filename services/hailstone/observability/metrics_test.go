// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ============================================================================
// Test Helper: isolated metrics per test
// ============================================================================

// newTestMetrics creates SequenceMetrics on a private registry so tests
// never collide with the global registry or with each other.
func newTestMetrics(t *testing.T) *SequenceMetrics {
	t.Helper()
	return NewSequenceMetrics(prometheus.NewRegistry())
}

// ============================================================================
// Tests
// ============================================================================

func TestObserveRequest_CountsByStatus(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveRequest(StatusOK, 0.001)
	m.ObserveRequest(StatusOK, 0.002)
	m.ObserveRequest(StatusBadRequest, 0.0001)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(StatusOK)); got != 2 {
		t.Errorf("ok requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(StatusBadRequest)); got != 1 {
		t.Errorf("bad_request requests = %v, want 1", got)
	}
}

func TestObserveSequence_Truncations(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveSequence(112, false)
	m.ObserveSequence(1001, true)
	m.ObserveSequence(1001, true)

	if got := testutil.ToFloat64(m.TruncationsTotal); got != 2 {
		t.Errorf("truncations = %v, want 2", got)
	}
}

func TestObserveRequest_UnknownStatusStillCounted(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveRequest("weird", 0.001)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("weird")); got != 1 {
		t.Errorf("weird requests = %v, want 1", got)
	}
}

func TestNewSequenceMetrics_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSequenceMetrics(reg)
	m.ObserveRequest(StatusOK, 0.001)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families, got none")
	}
}
