package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

// Timeline wraps a host sequence.
type Timeline struct {
	s bridge.Sequence
}

// NewTimeline wraps the given sequence handle.
func NewTimeline(s bridge.Sequence) *Timeline {
	return &Timeline{s: s}
}

// Handle returns the underlying bridge handle.
func (t *Timeline) Handle() bridge.Sequence {
	return t.s
}

// Name returns the timeline name.
func (t *Timeline) Name(ctx context.Context) (string, error) {
	return t.s.Name(ctx)
}

// NodeID returns the internal id of the sequence's backing project
// item. The sequence itself is not a project item, but it is backed by
// one.
func (t *Timeline) NodeID(ctx context.Context) (string, error) {
	item, err := t.s.ProjectItem(ctx)
	if err != nil {
		return "", fmt.Errorf("get sequence project item: %w", err)
	}
	return item.NodeID(ctx)
}

// VideoTracks returns the video tracks of this timeline, scanned by
// index up to the reported count.
func (t *Timeline) VideoTracks(ctx context.Context) ([]*Track, error) {
	count, err := t.s.VideoTrackCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count video tracks: %w", err)
	}

	tracks := make([]*Track, 0, count)
	for i := 0; i < count; i++ {
		track, err := t.s.VideoTrack(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get video track %d: %w", i, err)
		}
		tracks = append(tracks, NewTrack(track))
	}
	return tracks, nil
}

// AudioTracks returns the audio tracks of this timeline, scanned by
// index up to the reported count.
func (t *Timeline) AudioTracks(ctx context.Context) ([]*Track, error) {
	count, err := t.s.AudioTrackCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audio tracks: %w", err)
	}

	tracks := make([]*Track, 0, count)
	for i := 0; i < count; i++ {
		track, err := t.s.AudioTrack(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get audio track %d: %w", i, err)
		}
		tracks = append(tracks, NewTrack(track))
	}
	return tracks, nil
}

// Tracks returns all tracks of this timeline, video tracks first.
func (t *Timeline) Tracks(ctx context.Context) ([]*Track, error) {
	video, err := t.VideoTracks(ctx)
	if err != nil {
		return nil, err
	}
	audio, err := t.AudioTracks(ctx)
	if err != nil {
		return nil, err
	}
	return append(video, audio...), nil
}

// Clips returns every clip placement from every track of this
// timeline.
func (t *Timeline) Clips(ctx context.Context) ([]*TrackClip, error) {
	tracks, err := t.Tracks(ctx)
	if err != nil {
		return nil, err
	}

	var clips []*TrackClip
	for _, track := range tracks {
		trackClips, err := track.Clips(ctx)
		if err != nil {
			return nil, err
		}
		clips = append(clips, trackClips...)
	}
	return clips, nil
}
