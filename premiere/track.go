package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

// Track wraps one track of a sequence.
type Track struct {
	t bridge.Track
}

// NewTrack wraps the given track handle.
func NewTrack(t bridge.Track) *Track {
	return &Track{t: t}
}

// Handle returns the underlying bridge handle.
func (t *Track) Handle() bridge.Track {
	return t.t
}

// Name returns the track name.
func (t *Track) Name(ctx context.Context) (string, error) {
	return t.t.Name(ctx)
}

// Clips returns the clip placements on this track, scanned by index up
// to the reported count.
func (t *Track) Clips(ctx context.Context) ([]*TrackClip, error) {
	count, err := t.t.ClipCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count track clips: %w", err)
	}

	clips := make([]*TrackClip, 0, count)
	for i := 0; i < count; i++ {
		clip, err := t.t.Clip(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get track clip %d: %w", i, err)
		}
		clips = append(clips, NewTrackClip(clip))
	}
	return clips, nil
}

// TrackClip wraps an instance of a clip placed on a track.
type TrackClip struct {
	ti bridge.TrackItem
}

// NewTrackClip wraps the given track item handle.
func NewTrackClip(ti bridge.TrackItem) *TrackClip {
	return &TrackClip{ti: ti}
}

// Handle returns the underlying bridge handle.
func (c *TrackClip) Handle() bridge.TrackItem {
	return c.ti
}

// Name returns the track clip name.
func (c *TrackClip) Name(ctx context.Context) (string, error) {
	return c.ti.Name(ctx)
}

// Clip returns the clip providing media for this placement, or
// (nil, nil) when the placement has no source item.
func (c *TrackClip) Clip(ctx context.Context) (*Clip, error) {
	item, err := c.ti.ProjectItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("get track clip source item: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	return NewClip(item), nil
}
