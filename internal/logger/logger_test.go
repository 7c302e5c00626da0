// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")

	require.NotNil(t, log)
	// Must not panic when used.
	log.Debug().Msg("hello")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()

	require.NotNil(t, log)
	log.Error().Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()

	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutLogger(t *testing.T) {
	log := FromContext(context.Background())

	require.NotNil(t, log)
	log.Info().Msg("from default context logger")
}
