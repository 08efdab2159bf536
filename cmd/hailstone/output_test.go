// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
)

// =============================================================================
// FormatSequence Tests
// =============================================================================

func TestFormatSequence_Rows(t *testing.T) {
	steps := datatypes.BuildSteps([]int64{6, 3, 10})
	out := FormatSequence(steps)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Step  0:")
	assert.Contains(t, lines[0], "6")
	assert.Contains(t, lines[1], "(divide)")
	assert.Contains(t, lines[2], "(multiply-add)")
}

func TestFormatSequence_FirstRowHasNoOperation(t *testing.T) {
	steps := datatypes.BuildSteps([]int64{27, 82})
	out := FormatSequence(steps)

	lines := strings.Split(out, "\n")
	assert.NotContains(t, lines[0], "(")
	assert.Contains(t, lines[1], "(multiply-add)")
}

// =============================================================================
// FormatChart Tests
// =============================================================================

func TestFormatChart_ScalesToLargestValue(t *testing.T) {
	steps := datatypes.BuildSteps([]int64{16, 8, 4, 2, 1})
	out := FormatChart(steps)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)

	// Largest value fills the full width, each halving halves the bar.
	assert.Equal(t, chartWidth, strings.Count(lines[0], "█"))
	assert.Equal(t, chartWidth/2, strings.Count(lines[1], "█"))
	// Small values never disappear entirely.
	assert.GreaterOrEqual(t, strings.Count(lines[4], "█"), 1)
}

func TestFormatChart_Empty(t *testing.T) {
	assert.Equal(t, "", FormatChart(nil))
}

// =============================================================================
// RenderResult Tests
// =============================================================================

func TestRenderResult_ExitCodes(t *testing.T) {
	steps := datatypes.BuildSteps([]int64{8, 4, 2, 1})

	assert.Equal(t, CLIExitSuccess, RenderResult("compute", steps, false, false, false))
	assert.Equal(t, CLIExitTruncated, RenderResult("compute", steps, true, false, false))
}

func TestRenderError_ExitCode(t *testing.T) {
	assert.Equal(t, CLIExitError, RenderError("compute", assert.AnError, false))
}
