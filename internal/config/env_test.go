// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"BRIDGE_ADDRESS":         "127.0.0.1:8088",
		"BRIDGE_REQUEST_TIMEOUT": "45s",

		"WORKERS_SNAPSHOT_INTERVAL": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "127.0.0.1:8088", cfg.Bridge.Address)
	assert.Equal(t, 45*time.Second, cfg.Bridge.RequestTimeout)

	assert.Equal(t, 5*time.Second, cfg.Workers.SnapshotInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BRIDGE_ADDRESS": "localhost:8088",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8088", cfg.Bridge.Address)
	assert.Zero(t, cfg.Bridge.RequestTimeout)
	assert.Empty(t, cfg.App.Version)
	assert.Zero(t, cfg.Workers.SnapshotInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"BRIDGE_REQUEST_TIMEOUT": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
