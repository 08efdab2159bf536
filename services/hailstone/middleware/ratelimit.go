// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/hailstonelabs/hailstone/services/hailstone/datatypes"
)

// clientLimiter pairs a token bucket with its last activity time so stale
// entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket keyed by client IP.
//
// Rejected requests receive 429 with the standard error body. Entries idle
// longer than staleAfter are evicted on the next request, keeping the map
// bounded on long-running servers.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	rps        rate.Limit
	burst      int
	staleAfter time.Duration
}

// NewRateLimiter creates a limiter allowing rps sustained requests per
// second with the given burst per client IP.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*clientLimiter),
		rps:        rate.Limit(rps),
		burst:      burst,
		staleAfter: 3 * time.Minute,
	}
}

// allow reports whether the client identified by key may proceed now.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cl, ok := rl.clients[key]
	if !ok {
		rl.evictStaleLocked(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}

// evictStaleLocked drops clients idle past staleAfter. Caller holds mu.
func (rl *RateLimiter) evictStaleLocked(now time.Time) {
	for key, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > rl.staleAfter {
			delete(rl.clients, key)
		}
	}
}

// Middleware returns the gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				datatypes.ErrorResponse{Error: "rate limit exceeded, slow down"})
			return
		}
		c.Next()
	}
}
