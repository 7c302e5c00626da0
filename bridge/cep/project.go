package cep

import (
	"context"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

type project struct {
	c      *Client
	handle string
}

var _ bridge.Project = (*project)(nil)

func (p *project) DocumentID(ctx context.Context) (string, error) {
	return p.c.getString(ctx, p.handle, "documentID")
}

func (p *project) Name(ctx context.Context) (string, error) {
	return p.c.getString(ctx, p.handle, "name")
}

func (p *project) Path(ctx context.Context) (string, error) {
	return p.c.getString(ctx, p.handle, "path")
}

func (p *project) RootItem(ctx context.Context) (bridge.ProjectItem, error) {
	resp, err := p.c.get(ctx, p.handle, "rootItem")
	if err != nil {
		return nil, err
	}
	return &projectItem{c: p.c, handle: resp.Handle}, nil
}

func (p *project) Sequences(ctx context.Context) ([]bridge.Sequence, error) {
	resp, err := p.c.get(ctx, p.handle, "sequences")
	if err != nil {
		return nil, err
	}

	sequences := make([]bridge.Sequence, 0, len(resp.Handles))
	for _, h := range resp.Handles {
		sequences = append(sequences, &sequence{c: p.c, handle: h})
	}
	return sequences, nil
}

func (p *project) ActiveSequence(ctx context.Context) (bridge.Sequence, error) {
	resp, err := p.c.get(ctx, p.handle, "activeSequence")
	if err != nil {
		return nil, err
	}
	if resp.Handle == "" {
		return nil, nil
	}
	return &sequence{c: p.c, handle: resp.Handle}, nil
}

func (p *project) InsertionBin(ctx context.Context) (bridge.ProjectItem, error) {
	resp, err := p.c.call(ctx, p.handle, "getInsertionBin")
	if err != nil {
		return nil, err
	}
	return &projectItem{c: p.c, handle: resp.Handle}, nil
}

func (p *project) AddPropertyToMetadataSchema(ctx context.Context, name, label string, valueType models.PropertyType) error {
	_, err := p.c.call(ctx, p.handle, "addPropertyToProjectMetadataSchema", name, label, int(valueType))
	return err
}

func (p *project) Save(ctx context.Context) error {
	_, err := p.c.call(ctx, p.handle, "save")
	return err
}

func (p *project) SaveAs(ctx context.Context, path string) error {
	_, err := p.c.call(ctx, p.handle, "saveAs", path)
	return err
}
