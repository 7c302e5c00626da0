// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package premiere

import (
	"context"
	"errors"
	"testing"

	"github.com/studiopipe/go-premiere/bridge/bridgetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Clips ────────────────────────────────────────────────────────────────────

func TestBin_Clips_SkipsNilAndNonClipChildren(t *testing.T) {
	host := bridgetest.NewBin("shots",
		nil,
		bridgetest.NewClip("plate.mov", "/media/plate.mov"),
		bridgetest.NewBin("nested"),
		bridgetest.NewSequenceItem("edit"),
		bridgetest.NewClip("audio.wav", "/media/audio.wav"),
	)
	bin := NewBin(host)

	clips, err := bin.Clips(context.Background())
	require.NoError(t, err)
	require.Len(t, clips, 2)

	first, err := clips[0].Name(context.Background())
	require.NoError(t, err)
	second, err := clips[1].Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plate.mov", first)
	assert.Equal(t, "audio.wav", second)
}

func TestBin_Clips_Empty(t *testing.T) {
	bin := NewBin(bridgetest.NewBin("empty"))

	clips, err := bin.Clips(context.Background())

	require.NoError(t, err)
	assert.Empty(t, clips)
}

// ── BinByName ────────────────────────────────────────────────────────────────

func TestBin_BinByName_FirstMatchWins(t *testing.T) {
	first := bridgetest.NewBin("dailies")
	second := bridgetest.NewBin("dailies")
	host := bridgetest.NewBin("root", first, second)
	bin := NewBin(host)

	found, err := bin.BinByName(context.Background(), "dailies")
	require.NoError(t, err)
	require.NotNil(t, found)

	id, err := found.NodeID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
}

func TestBin_BinByName_CaseSensitive(t *testing.T) {
	host := bridgetest.NewBin("root", bridgetest.NewBin("Dailies"))
	bin := NewBin(host)

	found, err := bin.BinByName(context.Background(), "dailies")

	require.NoError(t, err)
	assert.Nil(t, found)
}

// ── CreateClipFromMedia ──────────────────────────────────────────────────────

func TestBin_CreateClipFromMedia(t *testing.T) {
	target := bridgetest.NewBin("footage")
	host := &bridgetest.Host{}
	bin := NewBin(target)

	clip, err := bin.CreateClipFromMedia(context.Background(), host, "/media/sh010/plate.mov")
	require.NoError(t, err)

	path, err := clip.MediaPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/sh010/plate.mov", path)

	name, err := clip.Name(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plate.mov", name)
}

func TestBin_CreateClipFromMedia_NothingImported(t *testing.T) {
	target := bridgetest.NewBin("footage")
	host := &bridgetest.Host{
		ImportFunc: func(_ *bridgetest.Item, _ string) {},
	}
	bin := NewBin(target)

	_, err := bin.CreateClipFromMedia(context.Background(), host, "/media/missing.mov")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipNotCreated)
}

func TestBin_CreateClipFromMedia_ImportedSomethingElse(t *testing.T) {
	target := bridgetest.NewBin("footage")
	host := &bridgetest.Host{
		ImportFunc: func(item *bridgetest.Item, _ string) {
			item.Children = append(item.Children, bridgetest.NewBin("unexpected"))
		},
	}
	bin := NewBin(target)

	_, err := bin.CreateClipFromMedia(context.Background(), host, "/media/plate.mov")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipNotRetrieved)
}

func TestBin_CreateClipFromMedia_ImportError(t *testing.T) {
	target := bridgetest.NewBin("footage")
	importErr := errors.New("host refused")
	host := &bridgetest.Host{ImportErr: importErr}
	bin := NewBin(target)

	_, err := bin.CreateClipFromMedia(context.Background(), host, "/media/plate.mov")

	require.Error(t, err)
	assert.ErrorIs(t, err, importErr)
}
