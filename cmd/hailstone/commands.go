// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	maxSteps    int    // Step cap for local computation (0 = unbounded)
	jsonOutput  bool   // Output as JSON for scripting
	showChart   bool   // Render a terminal bar chart alongside the table
	quietOutput bool   // Suppress logging, table only
	serverURL   string // Base URL of a running hailstone service

	rootCmd = &cobra.Command{
		Use:   "hailstone",
		Short: "Compute and explore Collatz (hailstone) sequences",
		Long: `Hailstone computes Collatz sequences: starting from a positive
integer, halve it if even or triple-and-add-one if odd, until reaching 1.

Compute locally, or query a running hailstone service over HTTP.`,
	}

	computeCmd = &cobra.Command{
		Use:   "compute [number]",
		Short: "Compute the sequence for a starting number locally",
		Args:  cobra.ExactArgs(1),
		Run:   runComputeCommand, // Defined in cmd_compute.go
	}

	queryCmd = &cobra.Command{
		Use:   "query [number]",
		Short: "Query a running hailstone service for a sequence",
		Args:  cobra.ExactArgs(1),
		Run:   runQueryCommand, // Defined in cmd_query.go
	}
)

func init() {
	computeCmd.Flags().IntVar(&maxSteps, "max-steps", 0,
		"Cap the number of steps (0 = unbounded)")
	computeCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")
	computeCmd.Flags().BoolVar(&showChart, "chart", false,
		"Render a terminal bar chart of the sequence")
	computeCmd.Flags().BoolVarP(&quietOutput, "quiet", "q", false,
		"Suppress log output")

	queryCmd.Flags().StringVar(&serverURL, "server", "http://localhost:12110",
		"Base URL of the hailstone service")
	queryCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")
	queryCmd.Flags().BoolVar(&showChart, "chart", false,
		"Render a terminal bar chart of the sequence")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(queryCmd)
}
