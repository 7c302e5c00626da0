// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package config

import (
	"time"
)

// DefaultRequestTimeout is applied when no request timeout is
// configured; a host busy rendering can take a while to answer.
const DefaultRequestTimeout = 30 * time.Second

// StructuredConfig is the top-level configuration container for the
// adapter. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Bridge holds the host bridge endpoint settings.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Workers holds configuration for background snapshot workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running adapter
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Bridge holds the host scripting bridge endpoint settings.
type Bridge struct {
	// Address is the host eval endpoint address in "host:port" format
	// (e.g. "127.0.0.1:8088"). The panel extension serving the endpoint
	// only listens on loopback.
	// Env: BRIDGE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single bridge
	// round trip (e.g. "30s", "1m"). Defaults to
	// [DefaultRequestTimeout] when zero.
	// Env: BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SnapshotInterval defines how often the session snapshot worker
	// runs in watch mode.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the adapter
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
