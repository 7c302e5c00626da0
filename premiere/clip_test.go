// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package premiere

import (
	"context"
	"testing"

	"github.com/studiopipe/go-premiere/bridge/bridgetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip_SetMediaPath(t *testing.T) {
	host := bridgetest.NewClip("plate.mov", "/media/old/plate.mov")
	clip := NewClip(host)

	err := clip.SetMediaPath(context.Background(), "/media/new/plate.mov")
	require.NoError(t, err)

	path, err := clip.MediaPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/new/plate.mov", path)
}

func TestClip_SetMediaPath_Locked(t *testing.T) {
	host := bridgetest.NewClip("plate.mov", "/media/old/plate.mov")
	host.MediaLocked = true
	clip := NewClip(host)

	err := clip.SetMediaPath(context.Background(), "/media/new/plate.mov")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMediaPathLocked)

	path, err := clip.MediaPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/old/plate.mov", path)
}
