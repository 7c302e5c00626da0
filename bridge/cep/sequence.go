package cep

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

type sequence struct {
	c      *Client
	handle string
}

var _ bridge.Sequence = (*sequence)(nil)

func (s *sequence) SequenceID(ctx context.Context) (string, error) {
	return s.c.getString(ctx, s.handle, "sequenceID")
}

func (s *sequence) Name(ctx context.Context) (string, error) {
	return s.c.getString(ctx, s.handle, "name")
}

func (s *sequence) ProjectItem(ctx context.Context) (bridge.ProjectItem, error) {
	resp, err := s.c.get(ctx, s.handle, "projectItem")
	if err != nil {
		return nil, err
	}
	return &projectItem{c: s.c, handle: resp.Handle}, nil
}

func (s *sequence) Timebase(ctx context.Context) (int64, error) {
	return s.c.getInt64(ctx, s.handle, "timebase")
}

func (s *sequence) InPointTicks(ctx context.Context) (int64, error) {
	return s.c.getInt64(ctx, s.handle, "getInPointAsTime().ticks")
}

func (s *sequence) OutPointTicks(ctx context.Context) (int64, error) {
	return s.c.getInt64(ctx, s.handle, "getOutPointAsTime().ticks")
}

func (s *sequence) ZeroPointTicks(ctx context.Context) (int64, error) {
	return s.c.getInt64(ctx, s.handle, "zeroPoint")
}

func (s *sequence) EndTicks(ctx context.Context) (int64, error) {
	return s.c.getInt64(ctx, s.handle, "end")
}

func (s *sequence) VideoTrackCount(ctx context.Context) (int, error) {
	return s.c.getInt(ctx, s.handle, "videoTracks.numTracks")
}

func (s *sequence) VideoTrack(ctx context.Context, i int) (bridge.Track, error) {
	resp, err := s.c.get(ctx, s.handle, fmt.Sprintf("videoTracks[%d]", i))
	if err != nil {
		return nil, err
	}
	return &track{c: s.c, handle: resp.Handle}, nil
}

func (s *sequence) AudioTrackCount(ctx context.Context) (int, error) {
	return s.c.getInt(ctx, s.handle, "audioTracks.numTracks")
}

func (s *sequence) AudioTrack(ctx context.Context, i int) (bridge.Track, error) {
	resp, err := s.c.get(ctx, s.handle, fmt.Sprintf("audioTracks[%d]", i))
	if err != nil {
		return nil, err
	}
	return &track{c: s.c, handle: resp.Handle}, nil
}
