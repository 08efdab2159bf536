// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
)

// Exit codes for CLI commands.
const (
	CLIExitSuccess   = 0 // Sequence reached 1
	CLIExitTruncated = 1 // Step cap hit before reaching 1
	CLIExitError     = 2 // Operation failed
)

// chartWidth is the maximum bar width in terminal cells.
const chartWidth = 50

// Hailstone color palette - ice blues and storm greys
var (
	colorIce     = lipgloss.Color("#7FDBFF")
	colorFrost   = lipgloss.Color("#39CCCC")
	colorStorm   = lipgloss.Color("#5C7A89")
	colorAmber   = lipgloss.Color("#F4D03F")
	colorScarlet = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles for CLI output.
var Styles = struct {
	Title   lipgloss.Style
	Step    lipgloss.Style
	Value   lipgloss.Style
	Op      lipgloss.Style
	Bar     lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorIce),
	Step:    lipgloss.NewStyle().Foreground(colorStorm),
	Value:   lipgloss.NewStyle().Bold(true),
	Op:      lipgloss.NewStyle().Foreground(colorStorm),
	Bar:     lipgloss.NewStyle().Foreground(colorFrost),
	Warning: lipgloss.NewStyle().Foreground(colorAmber),
	Error:   lipgloss.NewStyle().Foreground(colorScarlet),
}

// CommandResult wraps command output for --json mode.
type CommandResult struct {
	Command   string                   `json:"command"`
	Success   bool                     `json:"success"`
	Truncated bool                     `json:"truncated,omitempty"`
	Steps     []datatypes.SequenceStep `json:"steps,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

// OutputJSON writes structured data as indented JSON to stdout.
func OutputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatSequence renders the classic step table:
//
//	Step  0: 27
//	Step  1: 82  (multiply-add)
//	Step  2: 41  (divide)
//
// The first row has no operation label.
func FormatSequence(steps []datatypes.SequenceStep) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Styles.Step.Render(fmt.Sprintf("Step %2d:", step.Step)))
		b.WriteString(Styles.Value.Render(fmt.Sprintf(" %d", step.Value)))
		if step.Operation != "" {
			b.WriteString(Styles.Op.Render(fmt.Sprintf("  (%s)", step.Operation)))
		}
	}
	return b.String()
}

// FormatChart renders a horizontal bar chart of the sequence values,
// scaled so the largest value fills chartWidth cells. Every bar gets at
// least one cell so small values stay visible.
func FormatChart(steps []datatypes.SequenceStep) string {
	if len(steps) == 0 {
		return ""
	}

	var maxValue int64 = 1
	for _, step := range steps {
		if step.Value > maxValue {
			maxValue = step.Value
		}
	}

	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		// Float math: value*chartWidth can overflow int64 for large values.
		width := int(float64(step.Value) / float64(maxValue) * chartWidth)
		if width < 1 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("%12d ", step.Value))
		b.WriteString(Styles.Bar.Render(strings.Repeat("█", width)))
	}
	return b.String()
}

// RenderResult prints a computed sequence in the requested format and
// returns the exit code.
func RenderResult(command string, steps []datatypes.SequenceStep, truncated bool,
	asJSON, withChart bool) int {

	if asJSON {
		result := CommandResult{
			Command:   command,
			Success:   true,
			Truncated: truncated,
			Steps:     steps,
		}
		if err := OutputJSON(result); err != nil {
			fmt.Fprintln(os.Stderr, Styles.Error.Render("failed to encode output: "+err.Error()))
			return CLIExitError
		}
	} else {
		fmt.Println(Styles.Title.Render(fmt.Sprintf("Hailstone sequence (%d values)", len(steps))))
		fmt.Println(FormatSequence(steps))
		if withChart {
			fmt.Println()
			fmt.Println(FormatChart(steps))
		}
		if truncated {
			fmt.Println(Styles.Warning.Render("sequence truncated by the step cap before reaching 1"))
		}
	}

	if truncated {
		return CLIExitTruncated
	}
	return CLIExitSuccess
}

// RenderError prints err in the requested format and returns CLIExitError.
func RenderError(command string, err error, asJSON bool) int {
	if asJSON {
		_ = OutputJSON(CommandResult{Command: command, Success: false, Error: err.Error()})
	} else {
		fmt.Fprintln(os.Stderr, Styles.Error.Render("Error: "+err.Error()))
	}
	return CLIExitError
}
