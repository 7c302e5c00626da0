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

func newTestTimeline() *bridgetest.Sequence {
	plate := bridgetest.NewClip("plate.mov", "/media/plate.mov")
	return &bridgetest.Sequence{
		ID:          "seq-1",
		SeqName:     "cut_A",
		Item:        bridgetest.NewSequenceItem("cut_A"),
		TimebaseVal: 100,
		Video: []*bridgetest.Track{
			{TrackID: 1, TrackName: "V1", Media: "Video", ClipItems: []*bridgetest.TrackItem{
				{ItemName: "plate.mov", Source: plate, Media: "Video"},
			}},
			{TrackID: 2, TrackName: "V2", Media: "Video"},
		},
		Audio: []*bridgetest.Track{
			{TrackID: 1, TrackName: "A1", Media: "Audio", ClipItems: []*bridgetest.TrackItem{
				{ItemName: "audio.wav", Media: "Audio"},
			}},
		},
	}
}

func TestTimeline_Tracks_VideoFirst(t *testing.T) {
	timeline := NewTimeline(newTestTimeline())

	tracks, err := timeline.Tracks(context.Background())
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	names := make([]string, 0, len(tracks))
	for _, track := range tracks {
		name, err := track.Name(context.Background())
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"V1", "V2", "A1"}, names)
}

func TestTimeline_Clips_AcrossTracks(t *testing.T) {
	timeline := NewTimeline(newTestTimeline())

	clips, err := timeline.Clips(context.Background())
	require.NoError(t, err)
	require.Len(t, clips, 2)
}

func TestTimeline_NodeID(t *testing.T) {
	seq := newTestTimeline()
	timeline := NewTimeline(seq)

	id, err := timeline.NodeID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, seq.Item.ID, id)
}

func TestTrackClip_Clip(t *testing.T) {
	timeline := NewTimeline(newTestTimeline())

	clips, err := timeline.Clips(context.Background())
	require.NoError(t, err)
	require.Len(t, clips, 2)

	// The video placement has source media behind it.
	clip, err := clips[0].Clip(context.Background())
	require.NoError(t, err)
	require.NotNil(t, clip)

	path, err := clip.MediaPath(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/media/plate.mov", path)

	// The audio placement does not.
	clip, err = clips[1].Clip(context.Background())
	require.NoError(t, err)
	assert.Nil(t, clip)
}
