package cep

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

type projectItem struct {
	c      *Client
	handle string
}

var _ bridge.ProjectItem = (*projectItem)(nil)

func (i *projectItem) Name(ctx context.Context) (string, error) {
	return i.c.getString(ctx, i.handle, "name")
}

func (i *projectItem) SetName(ctx context.Context, name string) error {
	return i.c.set(ctx, i.handle, "name", name)
}

func (i *projectItem) NodeID(ctx context.Context) (string, error) {
	return i.c.getString(ctx, i.handle, "nodeId")
}

func (i *projectItem) Type(ctx context.Context) (models.ItemType, error) {
	v, err := i.c.getInt(ctx, i.handle, "type")
	if err != nil {
		return 0, err
	}
	return models.ItemType(v), nil
}

func (i *projectItem) IsSequence(ctx context.Context) (bool, error) {
	return i.c.callBool(ctx, i.handle, "isSequence")
}

func (i *projectItem) ChildCount(ctx context.Context) (int, error) {
	return i.c.getInt(ctx, i.handle, "children.numItems")
}

func (i *projectItem) Child(ctx context.Context, idx int) (bridge.ProjectItem, error) {
	resp, err := i.c.get(ctx, i.handle, fmt.Sprintf("children[%d]", idx))
	if err != nil {
		return nil, err
	}
	// The host can hand back null children; surface that as (nil, nil)
	// so callers can skip the slot.
	if resp.Handle == "" {
		return nil, nil
	}
	return &projectItem{c: i.c, handle: resp.Handle}, nil
}

func (i *projectItem) CreateBin(ctx context.Context, name string) (bridge.ProjectItem, error) {
	resp, err := i.c.call(ctx, i.handle, "createBin", name)
	if err != nil {
		return nil, err
	}
	return &projectItem{c: i.c, handle: resp.Handle}, nil
}

func (i *projectItem) MediaPath(ctx context.Context) (string, error) {
	return i.c.callString(ctx, i.handle, "getMediaPath")
}

func (i *projectItem) CanChangeMediaPath(ctx context.Context) (bool, error) {
	return i.c.callBool(ctx, i.handle, "canChangeMediaPath")
}

func (i *projectItem) ChangeMediaPath(ctx context.Context, path string) error {
	_, err := i.c.call(ctx, i.handle, "changeMediaPath", path)
	return err
}

func (i *projectItem) Metadata(ctx context.Context) (string, error) {
	return i.c.callString(ctx, i.handle, "getProjectMetadata")
}

func (i *projectItem) SetMetadata(ctx context.Context, blob string, updatedFields []string) error {
	_, err := i.c.call(ctx, i.handle, "setProjectMetadata", blob, updatedFields)
	return err
}
