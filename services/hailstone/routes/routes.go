// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package routes wires handlers onto the gin router.
package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hailstonelabs/hailstone/services/hailstone/config"
	"github.com/hailstonelabs/hailstone/services/hailstone/handlers"
	"github.com/hailstonelabs/hailstone/services/hailstone/observability"
	"github.com/hailstonelabs/hailstone/services/hailstone/ui"
)

// SetupRoutes registers all service routes on router.
func SetupRoutes(router *gin.Engine, cfg config.Config,
	metrics *observability.SequenceMetrics) error {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	uiFS, err := ui.FS()
	if err != nil {
		return fmt.Errorf("loading embedded UI assets: %w", err)
	}
	router.StaticFS("/ui", http.FS(uiFS))

	// Friendly redirect so the page is reachable at the root
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/")
	})

	api := router.Group("/api")
	{
		api.POST("/collatz", handlers.HandleSequence(cfg.MaxSteps, metrics))
	}

	return nil
}
