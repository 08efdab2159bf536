// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers provides HTTP handlers for the hailstone service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hailstonelabs/hailstone/pkg/collatz"
	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
	"github.com/hailstonelabs/hailstone/services/hailstone/observability"
)

// Tracer for sequence request spans.
var sequenceTracer = otel.Tracer("hailstone.handlers")

// HandleSequence returns the POST /api/collatz handler.
//
// The handler binds {"number": <integer>}, validates it, computes the
// hailstone sequence capped at maxSteps, and responds with labeled steps
// plus the truncation flag. Error mapping:
//
//   - malformed body or non-positive number -> 400
//   - intermediate value outside int64      -> 422
//   - anything else from the engine         -> 500
//
// Truncation is a normal outcome, not an error: the response is 200 with
// truncated=true.
func HandleSequence(maxSteps int, metrics *observability.SequenceMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		_, span := sequenceTracer.Start(c.Request.Context(), "sequence.compute")
		defer span.End()

		finish := func(status string) {
			metrics.ObserveRequest(status, time.Since(began).Seconds())
		}

		var req datatypes.SequenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			finish(observability.StatusBadRequest)
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{
				Error: `invalid request body: expected {"number": <positive integer>}`,
			})
			return
		}
		if err := req.Validate(); err != nil {
			finish(observability.StatusBadRequest)
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{
				Error: "number must be a positive integer",
			})
			return
		}

		span.SetAttributes(attribute.Int64("sequence.start", req.Number))

		res, err := collatz.Compute(req.Number, maxSteps)
		switch {
		case errors.Is(err, collatz.ErrInvalidStart):
			finish(observability.StatusBadRequest)
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{Error: err.Error()})
			return
		case errors.Is(err, collatz.ErrOverflow):
			slog.Warn("sequence overflowed int64", "start", req.Number)
			finish(observability.StatusOverflow)
			c.JSON(http.StatusUnprocessableEntity, datatypes.ErrorResponse{
				Error: "sequence value exceeds the supported integer range",
			})
			return
		case err != nil:
			slog.Error("sequence computation failed", "start", req.Number, "error", err)
			finish(observability.StatusError)
			c.JSON(http.StatusInternalServerError, datatypes.ErrorResponse{
				Error: "internal error computing sequence",
			})
			return
		}

		span.SetAttributes(
			attribute.Int("sequence.length", len(res.Values)),
			attribute.Bool("sequence.truncated", res.Truncated),
		)
		metrics.ObserveSequence(len(res.Values), res.Truncated)
		finish(observability.StatusOK)

		slog.Info("computed sequence",
			"start", req.Number,
			"length", len(res.Values),
			"truncated", res.Truncated)

		c.JSON(http.StatusOK, datatypes.SequenceResponse{
			Steps:     datatypes.BuildSteps(res.Values),
			Truncated: res.Truncated,
		})
	}
}
