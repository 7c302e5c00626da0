package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidBridgeConfigs indicates invalid bridge settings
	// (for example, a missing endpoint address).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
)
