package cep

import (
	"context"

	"github.com/studiopipe/go-premiere/bridge"
)

type trackItem struct {
	c      *Client
	handle string
}

var _ bridge.TrackItem = (*trackItem)(nil)

func (t *trackItem) Name(ctx context.Context) (string, error) {
	return t.c.getString(ctx, t.handle, "name")
}

func (t *trackItem) ProjectItem(ctx context.Context) (bridge.ProjectItem, error) {
	resp, err := t.c.get(ctx, t.handle, "projectItem")
	if err != nil {
		return nil, err
	}
	// Transitions and synthetic items have no source project item.
	if resp.Handle == "" {
		return nil, nil
	}
	return &projectItem{c: t.c, handle: resp.Handle}, nil
}

func (t *trackItem) MediaType(ctx context.Context) (string, error) {
	return t.c.getString(ctx, t.handle, "mediaType")
}

func (t *trackItem) StartTicks(ctx context.Context) (int64, error) {
	return t.c.getInt64(ctx, t.handle, "start.ticks")
}

func (t *trackItem) EndTicks(ctx context.Context) (int64, error) {
	return t.c.getInt64(ctx, t.handle, "end.ticks")
}

func (t *trackItem) InPointTicks(ctx context.Context) (int64, error) {
	return t.c.getInt64(ctx, t.handle, "inPoint.ticks")
}

func (t *trackItem) OutPointTicks(ctx context.Context) (int64, error) {
	return t.c.getInt64(ctx, t.handle, "outPoint.ticks")
}

func (t *trackItem) DurationTicks(ctx context.Context) (int64, error) {
	return t.c.getInt64(ctx, t.handle, "duration.ticks")
}

func (t *trackItem) IsSelected(ctx context.Context) (bool, error) {
	return t.c.callBool(ctx, t.handle, "isSelected")
}

func (t *trackItem) Speed(ctx context.Context) (float64, error) {
	return t.c.callFloat(ctx, t.handle, "getSpeed")
}

func (t *trackItem) IsAdjustmentLayer(ctx context.Context) (bool, error) {
	return t.c.callBool(ctx, t.handle, "isAdjustmentLayer")
}
