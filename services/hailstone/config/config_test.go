// Copyright (C) 2025 Hailstone Labs (dev@hailstonelabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Default / Validate Tests
// =============================================================================

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "12110", cfg.Port)
	assert.Equal(t, DefaultMaxSteps, cfg.MaxSteps)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"zero max steps", func(c *Config) { c.MaxSteps = 0 }},
		{"negative max steps", func(c *Config) { c.MaxSteps = -1 }},
		{"rate limit zero rps", func(c *Config) { c.RateLimit.RPS = 0 }},
		{"rate limit zero burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hailstone.yaml")
	content := "port: \"8080\"\nmax_steps: 500\nrate_limit:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.False(t, cfg.RateLimit.Enabled)
	// Untouched keys keep defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

// =============================================================================
// ApplyEnv Tests
// =============================================================================

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("HAILSTONE_PORT", "9999")
	t.Setenv("HAILSTONE_MAX_STEPS", "250")
	t.Setenv("HAILSTONE_LOG_LEVEL", "debug")

	cfg, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 250, cfg.MaxSteps)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyEnv_BadNumberErrors(t *testing.T) {
	t.Setenv("HAILSTONE_MAX_STEPS", "lots")

	_, err := ApplyEnv(Default())
	assert.Error(t, err)
}

func TestApplyEnv_UnsetLeavesDefaults(t *testing.T) {
	t.Setenv("HAILSTONE_PORT", "")
	t.Setenv("HAILSTONE_MAX_STEPS", "")
	t.Setenv("HAILSTONE_LOG_LEVEL", "")

	cfg, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
