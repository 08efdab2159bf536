// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config provides configuration for the hailstone service.
//
// Configuration is resolved in three layers, lowest precedence first:
//
//  1. Built-in defaults (Default)
//  2. Optional YAML file (Load, path from HAILSTONE_CONFIG)
//  3. Environment variable overrides (ApplyEnv)
//
// The step cap lives here and not in the engine: pkg/collatz takes the cap
// as an explicit parameter, and this package owns the deployment default.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMaxSteps is the deployment default for the sequence step cap.
const DefaultMaxSteps = 1000

// Config holds all service settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `yaml:"port"`

	// MaxSteps caps rule applications per request. Values reaching the
	// cap produce a truncated (but successful) response.
	MaxSteps int `yaml:"max_steps"`

	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level"`

	// RateLimit configures the per-client request limiter.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig configures the token-bucket limiter applied per client IP.
type RateLimitConfig struct {
	// Enabled turns the limiter on.
	Enabled bool `yaml:"enabled"`

	// RPS is the sustained requests-per-second allowance per client.
	RPS float64 `yaml:"rps"`

	// Burst is the instantaneous burst allowance per client.
	Burst int `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:     "12110",
		MaxSteps: DefaultMaxSteps,
		LogLevel: "info",
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     10,
			Burst:   20,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error when path is empty; an explicitly configured path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variable overrides onto cfg.
//
// Recognized variables: HAILSTONE_PORT, HAILSTONE_MAX_STEPS,
// HAILSTONE_LOG_LEVEL. Unparseable numeric values are reported rather
// than silently ignored.
func ApplyEnv(cfg Config) (Config, error) {
	if port := os.Getenv("HAILSTONE_PORT"); port != "" {
		cfg.Port = port
	}
	if raw := os.Getenv("HAILSTONE_MAX_STEPS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("HAILSTONE_MAX_STEPS: %w", err)
		}
		cfg.MaxSteps = n
	}
	if level := os.Getenv("HAILSTONE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be >= 1, got %d", c.MaxSteps)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate_limit.rps must be > 0 when enabled, got %v", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 when enabled, got %d", c.RateLimit.Burst)
		}
	}
	return nil
}
