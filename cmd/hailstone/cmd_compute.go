// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hailstonelabs/hailstone/pkg/collatz"
	"github.com/hailstonelabs/hailstone/pkg/logging"
	"github.com/hailstonelabs/hailstone/pkg/validation"
	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
)

// runComputeCommand computes a sequence with the local engine.
//
// Exit codes: 0 when the sequence reaches 1, 1 when the --max-steps cap
// truncated it, 2 on invalid input or overflow.
func runComputeCommand(cmd *cobra.Command, args []string) {
	os.Exit(computeAndRender(args[0], maxSteps, jsonOutput, showChart, quietOutput))
}

// computeAndRender is the testable body of the compute command.
func computeAndRender(raw string, stepCap int, asJSON, withChart, quiet bool) int {
	logger := logging.New(logging.Config{Service: "cli", Quiet: quiet})

	start, err := validation.ParseStart(raw)
	if err != nil {
		return RenderError("compute", err, asJSON)
	}

	res, err := collatz.Compute(start, stepCap)
	if err != nil {
		logger.Error("computation failed", "start", start, "error", err)
		return RenderError("compute", err, asJSON)
	}

	logger.Debug("sequence computed",
		"start", start, "length", len(res.Values), "truncated", res.Truncated)

	return RenderResult("compute", datatypes.BuildSteps(res.Values), res.Truncated,
		asJSON, withChart)
}
