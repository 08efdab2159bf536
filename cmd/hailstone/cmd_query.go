// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hailstonelabs/hailstone/pkg/validation"
	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
)

// queryTimeout bounds the whole HTTP round trip; the computation itself
// finishes in microseconds, so anything slow is a network problem.
const queryTimeout = 10 * time.Second

// runQueryCommand fetches a sequence from a running hailstone service.
func runQueryCommand(cmd *cobra.Command, args []string) {
	os.Exit(queryAndRender(serverURL, args[0], jsonOutput, showChart))
}

// queryAndRender is the testable body of the query command.
func queryAndRender(server, raw string, asJSON, withChart bool) int {
	start, err := validation.ParseStart(raw)
	if err != nil {
		return RenderError("query", err, asJSON)
	}

	client := &http.Client{Timeout: queryTimeout}
	resp, err := fetchSequence(client, server, start)
	if err != nil {
		return RenderError("query", err, asJSON)
	}

	return RenderResult("query", resp.Steps, resp.Truncated, asJSON, withChart)
}

// fetchSequence POSTs the number to the service's /api/collatz endpoint.
func fetchSequence(client *http.Client, server string, number int64) (datatypes.SequenceResponse, error) {
	payload, err := json.Marshal(datatypes.SequenceRequest{Number: number})
	if err != nil {
		return datatypes.SequenceResponse{}, fmt.Errorf("encoding request: %w", err)
	}

	url := strings.TrimRight(server, "/") + "/api/collatz"
	httpResp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return datatypes.SequenceResponse{}, fmt.Errorf("reaching %s: %w", url, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var errResp datatypes.ErrorResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return datatypes.SequenceResponse{}, fmt.Errorf("service rejected request: %s", errResp.Error)
		}
		return datatypes.SequenceResponse{}, fmt.Errorf("service returned status %d", httpResp.StatusCode)
	}

	var resp datatypes.SequenceResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return datatypes.SequenceResponse{}, fmt.Errorf("decoding response: %w", err)
	}
	return resp, nil
}
