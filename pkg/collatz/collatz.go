// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package collatz computes hailstone (Collatz) sequences.
//
// The sequence for a starting value n is produced by repeatedly applying
// the Collatz rule until the value 1 is reached:
//
//	n -> n/2      when n is even
//	n -> 3n + 1   when n is odd
//
// # Numeric Semantics
//
// All arithmetic is performed on int64. The odd branch checks for overflow
// before computing 3n+1 and returns ErrOverflow instead of wrapping. For
// every starting value that fits comfortably in int64 this never triggers
// in practice, but the guarantee is explicit rather than silent.
//
// # Purity
//
// Compute holds no state, performs no I/O, and is safe to call from any
// number of goroutines concurrently. Identical inputs always produce
// identical results.
package collatz

import (
	"errors"
	"fmt"
	"math"
)

// Operation labels describing which rule produced a value from its
// predecessor. The starting value has no predecessor and gets OpNone.
const (
	OpNone        = ""
	OpDivide      = "divide"
	OpMultiplyAdd = "multiply-add"
)

var (
	// ErrInvalidStart is returned when the starting value is less than 1.
	ErrInvalidStart = errors.New("start must be a positive integer")

	// ErrOverflow is returned when 3n+1 would exceed the int64 range.
	ErrOverflow = errors.New("sequence value exceeds int64 range")
)

// maxOddStep is the largest odd value for which 3n+1 still fits in int64.
const maxOddStep = (math.MaxInt64 - 1) / 3

// Result holds a computed sequence.
//
// Values always begins with the starting value. When Truncated is false
// the final element is 1; when true, the configured step cap stopped the
// computation first and the final element is whatever value the sequence
// had reached.
type Result struct {
	Values    []int64
	Truncated bool
}

// Steps returns the number of rule applications performed, which is one
// less than the number of values.
func (r Result) Steps() int {
	if len(r.Values) == 0 {
		return 0
	}
	return len(r.Values) - 1
}

// Step applies the Collatz rule once.
//
// Returns ErrOverflow when n is odd and 3n+1 does not fit in int64.
func Step(n int64) (int64, error) {
	if n%2 == 0 {
		return n / 2, nil
	}
	if n > maxOddStep {
		return 0, fmt.Errorf("%w: 3*%d+1", ErrOverflow, n)
	}
	return n*3 + 1, nil
}

// Op reports the operation label for the transition out of prev.
func Op(prev int64) string {
	if prev%2 == 0 {
		return OpDivide
	}
	return OpMultiplyAdd
}

// Compute generates the hailstone sequence for start.
//
// maxSteps caps the number of rule applications; zero or negative means
// unbounded. The cap is deliberately a parameter rather than a package
// default so the computation stays fully deterministic for callers —
// deployment-level defaults belong to the adapter, not here.
//
// Compute returns ErrInvalidStart for start < 1 and ErrOverflow if an
// intermediate value would leave the int64 range; in both cases no
// partial result is returned.
func Compute(start int64, maxSteps int) (Result, error) {
	if start < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidStart, start)
	}

	values := []int64{start}
	current := start

	for current != 1 {
		if maxSteps > 0 && len(values)-1 >= maxSteps {
			return Result{Values: values, Truncated: true}, nil
		}
		next, err := Step(current)
		if err != nil {
			return Result{}, err
		}
		values = append(values, next)
		current = next
	}

	return Result{Values: values}, nil
}
