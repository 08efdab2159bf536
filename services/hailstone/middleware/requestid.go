// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package middleware provides HTTP middleware for the hailstone service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request identifier in both
// directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the request ID.
// Using a prefixed key prevents collisions with other context values.
const requestIDKey = "hailstone_request_id"

// RequestID assigns every request an identifier.
//
// A client-supplied X-Request-ID is kept so callers can correlate across
// systems; otherwise a fresh UUID is generated. The ID is echoed on the
// response and available to handlers via GetRequestID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
