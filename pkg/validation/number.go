// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation for user-supplied values.
//
// This package contains validators for values that arrive from outside the
// process boundary (CLI arguments, HTTP payloads). Validating here keeps
// the engine free of parsing concerns and gives every entry point the same
// error wording.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseStart parses a user-supplied starting number for a hailstone
// sequence.
//
// Valid values are base-10 integers >= 1 that fit in int64. Surrounding
// whitespace is tolerated; anything else (empty string, decimals,
// thousands separators, words) is rejected.
//
// Example:
//
//	start, err := validation.ParseStart(args[0])
//	if err != nil {
//	    return err
//	}
func ParseStart(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("starting number cannot be empty")
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("starting number %q exceeds the 64-bit integer range", trimmed)
		}
		return 0, fmt.Errorf("starting number %q is not an integer", trimmed)
	}

	if err := ValidateStart(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateStart checks that n is a valid sequence starting value.
func ValidateStart(n int64) error {
	if n < 1 {
		return fmt.Errorf("starting number must be >= 1, got %d", n)
	}
	return nil
}
