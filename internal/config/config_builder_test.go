// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: the bridge address is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBridgeConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Bridge: Bridge{Address: "localhost:8088"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8088", cfg.Bridge.Address)
}

// TestBuild_FirstSourceWins verifies merge priority: a field already set by
// an earlier source is not overridden by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Bridge: Bridge{Address: "localhost:8088", RequestTimeout: 10 * time.Second}},
		&StructuredConfig{Bridge: Bridge{Address: "localhost:9999", RequestTimeout: 20 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8088", cfg.Bridge.Address)
	assert.Equal(t, 10*time.Second, cfg.Bridge.RequestTimeout)
}

// TestBuild_AppliesDefaultRequestTimeout verifies that a missing request
// timeout is defaulted during validation.
func TestBuild_AppliesDefaultRequestTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Bridge: Bridge{Address: "localhost:8088"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeout, cfg.Bridge.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("BRIDGE_ADDRESS", "localhost:8088")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "localhost:8088", b.configs[0].Bridge.Address)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempFile(t, `{"app": {"version": "json-version"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	path := writeTempFile(t, `{"app": {"version": "last-wins"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_MissingAddress(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBridgeConfigs)
}

func TestValidate_WhitespaceAddress(t *testing.T) {
	cfg := &StructuredConfig{Bridge: Bridge{Address: "   "}}

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidBridgeConfigs)
}

func TestValidate_KeepsExplicitTimeout(t *testing.T) {
	cfg := &StructuredConfig{Bridge: Bridge{Address: "localhost:8088", RequestTimeout: time.Minute}}

	err := cfg.validate()

	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Bridge.RequestTimeout)
}
