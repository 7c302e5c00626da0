package cep

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

type track struct {
	c      *Client
	handle string
}

var _ bridge.Track = (*track)(nil)

func (t *track) ID(ctx context.Context) (int, error) {
	return t.c.getInt(ctx, t.handle, "id")
}

func (t *track) Name(ctx context.Context) (string, error) {
	return t.c.getString(ctx, t.handle, "name")
}

func (t *track) MediaType(ctx context.Context) (string, error) {
	return t.c.getString(ctx, t.handle, "mediaType")
}

func (t *track) IsMuted(ctx context.Context) (bool, error) {
	return t.c.callBool(ctx, t.handle, "isMuted")
}

func (t *track) ClipCount(ctx context.Context) (int, error) {
	return t.c.getInt(ctx, t.handle, "clips.numItems")
}

func (t *track) Clip(ctx context.Context, i int) (bridge.TrackItem, error) {
	resp, err := t.c.get(ctx, t.handle, fmt.Sprintf("clips[%d]", i))
	if err != nil {
		return nil, err
	}
	return &trackItem{c: t.c, handle: resp.Handle}, nil
}

func (t *track) TransitionCount(ctx context.Context) (int, error) {
	return t.c.getInt(ctx, t.handle, "transitions.numItems")
}

func (t *track) Transition(ctx context.Context, i int) (bridge.TrackItem, error) {
	resp, err := t.c.get(ctx, t.handle, fmt.Sprintf("transitions[%d]", i))
	if err != nil {
		return nil, err
	}
	return &trackItem{c: t.c, handle: resp.Handle}, nil
}
