// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides request and response types for the hailstone
// service.
package datatypes

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hailstonelabs/hailstone/pkg/collatz"
)

// sequenceValidate is the shared validator instance for request types.
var sequenceValidate = validator.New()

// SequenceRequest is the body of POST /api/collatz.
//
// The binding tag rejects missing/zero numbers during gin binding; Validate
// covers the remaining range rule with a clearer message for negatives.
type SequenceRequest struct {
	Number int64 `json:"number" binding:"required" validate:"required,gte=1"`
}

// Validate checks the request beyond JSON binding.
func (r *SequenceRequest) Validate() error {
	if err := sequenceValidate.Struct(r); err != nil {
		return fmt.Errorf("number must be a positive integer: %w", err)
	}
	return nil
}

// SequenceStep is one row of a computed sequence.
//
// Operation labels which rule produced Value from the previous step:
// "divide", "multiply-add", or "" for step 0.
type SequenceStep struct {
	Step      int    `json:"step"`
	Value     int64  `json:"value"`
	Operation string `json:"operation"`
}

// SequenceResponse is the success body of POST /api/collatz.
type SequenceResponse struct {
	Steps     []SequenceStep `json:"steps"`
	Truncated bool           `json:"truncated"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BuildSteps converts raw engine values into labeled steps.
func BuildSteps(values []int64) []SequenceStep {
	steps := make([]SequenceStep, len(values))
	for i, v := range values {
		op := collatz.OpNone
		if i > 0 {
			op = collatz.Op(values[i-1])
		}
		steps[i] = SequenceStep{Step: i, Value: v, Operation: op}
	}
	return steps
}
