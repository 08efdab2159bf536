// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for hailstone components.
//
// The package is a thin layer over the standard library slog package with
// project conventions baked in:
//
//   - stderr output by default, so CLI stdout stays machine-parseable
//   - a "service" attribute on every record identifying the component
//   - text format for humans, JSON for services and aggregation
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("sequence computed", "start", start, "length", length)
//	logger.Error("request failed", "error", err)
//
// # Service Usage
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelInfo,
//	    Service: "hailstoned",
//	    JSON:    true,
//	})
//
// # Thread Safety
//
// Logger is safe for concurrent use; slog handlers are thread-safe.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity, ordered Debug < Info < Warn < Error.
// Setting a minimum level filters out all records below it.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	LevelInfo

	// LevelWarn is for recoverable, unexpected situations.
	LevelWarn

	// LevelError is for failed operations when the process continues.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel bridges Level to the standard library. Unknown levels
// default to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config string ("debug", "info", "warn", "error")
// to a Level. Unrecognized values default to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures Logger behavior. The zero value produces an Info-level
// text logger on stderr.
type Config struct {
	// Level sets the minimum log level. Default: LevelInfo.
	Level Level

	// Service identifies the component generating logs. When non-empty
	// it is attached to every record as the "service" attribute.
	Service string

	// JSON switches output to JSON objects instead of human-readable text.
	JSON bool

	// Quiet discards all output. Useful for tests and --quiet CLI runs.
	Quiet bool

	// Writer overrides the output destination. Default: os.Stderr.
	Writer io.Writer
}

// =============================================================================
// Logger
// =============================================================================

// Logger provides structured logging with project conventions applied.
// Embedding *slog.Logger exposes Debug/Info/Warn/Error/With directly.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Quiet {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return &Logger{Logger: logger}
}

// Default returns an Info-level text logger on stderr.
func Default() *Logger {
	return New(Config{})
}
