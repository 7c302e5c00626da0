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

func TestItem_NameAndRename(t *testing.T) {
	host := bridgetest.NewClip("plate_v001.mov", "/media/plate_v001.mov")
	item := NewItem(host)

	name, err := item.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plate_v001.mov", name)

	require.NoError(t, item.SetName(context.Background(), "plate_v002.mov"))

	name, err = item.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plate_v002.mov", name)
}

// ── Metadata ─────────────────────────────────────────────────────────────────

func TestItem_Metadata_RoundTrip(t *testing.T) {
	host := bridgetest.NewClip("clip", "/media/clip.mov")
	host.Blob = sampleBlob
	item := NewItem(host)

	value, ok, err := item.SetMetadata(context.Background(), "artist", "bob")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob", value)

	value, ok, err = item.Metadata(context.Background(), "artist")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob", value)
}

func TestItem_Metadata_UnsetPropertyIsAbsent(t *testing.T) {
	host := bridgetest.NewClip("clip", "/media/clip.mov")
	host.Blob = sampleBlob
	item := NewItem(host)

	value, ok, err := item.Metadata(context.Background(), "status")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestItem_SetMetadata_NamesPropertyInWrite(t *testing.T) {
	host := bridgetest.NewClip("clip", "/media/clip.mov")
	host.Blob = sampleBlob
	item := NewItem(host)

	_, _, err := item.SetMetadata(context.Background(), "status", "approved")
	require.NoError(t, err)

	require.Len(t, host.MetadataWrites, 1)
	assert.Equal(t, []string{"status"}, host.MetadataWrites[0])
}

func TestItem_SetMetadata_LostOnEmptyBlob(t *testing.T) {
	host := bridgetest.NewClip("clip", "/media/clip.mov")
	item := NewItem(host)

	// No entries to patch over: the write succeeds but does not stick.
	value, ok, err := item.SetMetadata(context.Background(), "status", "approved")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.Empty(t, host.Blob)
}
