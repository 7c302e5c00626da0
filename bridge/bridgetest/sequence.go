package bridgetest

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

// Sequence is an in-memory [bridge.Sequence].
type Sequence struct {
	ID          string
	SeqName     string
	Item        *Item
	TimebaseVal int64

	InPoint   int64
	OutPoint  int64
	ZeroPoint int64
	EndVal    int64

	Video []*Track
	Audio []*Track
}

var _ bridge.Sequence = (*Sequence)(nil)

func (s *Sequence) SequenceID(_ context.Context) (string, error) {
	return s.ID, nil
}

func (s *Sequence) Name(_ context.Context) (string, error) {
	return s.SeqName, nil
}

func (s *Sequence) ProjectItem(_ context.Context) (bridge.ProjectItem, error) {
	return s.Item, nil
}

func (s *Sequence) Timebase(_ context.Context) (int64, error) {
	return s.TimebaseVal, nil
}

func (s *Sequence) InPointTicks(_ context.Context) (int64, error) {
	return s.InPoint, nil
}

func (s *Sequence) OutPointTicks(_ context.Context) (int64, error) {
	return s.OutPoint, nil
}

func (s *Sequence) ZeroPointTicks(_ context.Context) (int64, error) {
	return s.ZeroPoint, nil
}

func (s *Sequence) EndTicks(_ context.Context) (int64, error) {
	return s.EndVal, nil
}

func (s *Sequence) VideoTrackCount(_ context.Context) (int, error) {
	return len(s.Video), nil
}

func (s *Sequence) VideoTrack(_ context.Context, i int) (bridge.Track, error) {
	if i < 0 || i >= len(s.Video) {
		return nil, fmt.Errorf("video track index %d out of range", i)
	}
	return s.Video[i], nil
}

func (s *Sequence) AudioTrackCount(_ context.Context) (int, error) {
	return len(s.Audio), nil
}

func (s *Sequence) AudioTrack(_ context.Context, i int) (bridge.Track, error) {
	if i < 0 || i >= len(s.Audio) {
		return nil, fmt.Errorf("audio track index %d out of range", i)
	}
	return s.Audio[i], nil
}

// Track is an in-memory [bridge.Track].
type Track struct {
	TrackID     int
	TrackName   string
	Media       string
	Muted       bool
	ClipItems   []*TrackItem
	Transitions []*TrackItem
}

var _ bridge.Track = (*Track)(nil)

func (t *Track) ID(_ context.Context) (int, error) {
	return t.TrackID, nil
}

func (t *Track) Name(_ context.Context) (string, error) {
	return t.TrackName, nil
}

func (t *Track) MediaType(_ context.Context) (string, error) {
	return t.Media, nil
}

func (t *Track) IsMuted(_ context.Context) (bool, error) {
	return t.Muted, nil
}

func (t *Track) ClipCount(_ context.Context) (int, error) {
	return len(t.ClipItems), nil
}

func (t *Track) Clip(_ context.Context, i int) (bridge.TrackItem, error) {
	if i < 0 || i >= len(t.ClipItems) {
		return nil, fmt.Errorf("track clip index %d out of range", i)
	}
	return t.ClipItems[i], nil
}

func (t *Track) TransitionCount(_ context.Context) (int, error) {
	return len(t.Transitions), nil
}

func (t *Track) Transition(_ context.Context, i int) (bridge.TrackItem, error) {
	if i < 0 || i >= len(t.Transitions) {
		return nil, fmt.Errorf("track transition index %d out of range", i)
	}
	return t.Transitions[i], nil
}

// TrackItem is an in-memory [bridge.TrackItem].
type TrackItem struct {
	ItemName string
	Source   *Item
	Media    string

	Start    int64
	EndVal   int64
	In       int64
	Out      int64
	Duration int64

	Selected   bool
	SpeedVal   float64
	Adjustment bool
}

var _ bridge.TrackItem = (*TrackItem)(nil)

func (t *TrackItem) Name(_ context.Context) (string, error) {
	return t.ItemName, nil
}

func (t *TrackItem) ProjectItem(_ context.Context) (bridge.ProjectItem, error) {
	if t.Source == nil {
		return nil, nil
	}
	return t.Source, nil
}

func (t *TrackItem) MediaType(_ context.Context) (string, error) {
	return t.Media, nil
}

func (t *TrackItem) StartTicks(_ context.Context) (int64, error) {
	return t.Start, nil
}

func (t *TrackItem) EndTicks(_ context.Context) (int64, error) {
	return t.EndVal, nil
}

func (t *TrackItem) InPointTicks(_ context.Context) (int64, error) {
	return t.In, nil
}

func (t *TrackItem) OutPointTicks(_ context.Context) (int64, error) {
	return t.Out, nil
}

func (t *TrackItem) DurationTicks(_ context.Context) (int64, error) {
	return t.Duration, nil
}

func (t *TrackItem) IsSelected(_ context.Context) (bool, error) {
	return t.Selected, nil
}

func (t *TrackItem) Speed(_ context.Context) (float64, error) {
	return t.SpeedVal, nil
}

func (t *TrackItem) IsAdjustmentLayer(_ context.Context) (bool, error) {
	return t.Adjustment, nil
}
