// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// RateLimiter Tests
// =============================================================================

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	router := newLimitedRouter(NewRateLimiter(0.001, 1))

	first := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/", nil)
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate limit")
}

func TestRateLimiter_SeparateClientsSeparateBuckets(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	// A different client still has its full burst.
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimiter_EvictsStaleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.staleAfter = 10 * time.Millisecond

	rl.allow("10.0.0.1")
	time.Sleep(20 * time.Millisecond)
	// Creating a new client triggers eviction of the stale one.
	rl.allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	_, ok := rl.clients["10.0.0.1"]
	assert.False(t, ok, "stale client should be evicted")
}
