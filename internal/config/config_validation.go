// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies
// the adapter's invariants before it is used at startup, and fills in
// defaults for optional settings.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Bridge.Address) == "" {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Bridge.RequestTimeout == 0 {
		cfg.Bridge.RequestTimeout = DefaultRequestTimeout
	}

	return nil
}
