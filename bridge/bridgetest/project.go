package bridgetest

import (
	"context"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

// Project is an in-memory [bridge.Project].
type Project struct {
	ProjectDocumentID string
	ProjectName       string
	ProjectPath       string

	Root      *Item
	Seqs      []*Sequence
	Active    *Sequence
	Insertion *Item

	// Schema records every AddPropertyToMetadataSchema call.
	Schema []SchemaProperty

	// Saved counts Save calls; SavedAs records SaveAs targets.
	Saved   int
	SavedAs []string
}

// SchemaProperty is one recorded metadata schema registration.
type SchemaProperty struct {
	Name  string
	Label string
	Type  models.PropertyType
}

var _ bridge.Project = (*Project)(nil)

func (p *Project) DocumentID(_ context.Context) (string, error) {
	return p.ProjectDocumentID, nil
}

func (p *Project) Name(_ context.Context) (string, error) {
	return p.ProjectName, nil
}

func (p *Project) Path(_ context.Context) (string, error) {
	return p.ProjectPath, nil
}

func (p *Project) RootItem(_ context.Context) (bridge.ProjectItem, error) {
	return p.Root, nil
}

func (p *Project) Sequences(_ context.Context) ([]bridge.Sequence, error) {
	sequences := make([]bridge.Sequence, 0, len(p.Seqs))
	for _, s := range p.Seqs {
		sequences = append(sequences, s)
	}
	return sequences, nil
}

func (p *Project) ActiveSequence(_ context.Context) (bridge.Sequence, error) {
	if p.Active == nil {
		return nil, nil
	}
	return p.Active, nil
}

func (p *Project) InsertionBin(_ context.Context) (bridge.ProjectItem, error) {
	return p.Insertion, nil
}

func (p *Project) AddPropertyToMetadataSchema(_ context.Context, name, label string, valueType models.PropertyType) error {
	p.Schema = append(p.Schema, SchemaProperty{Name: name, Label: label, Type: valueType})
	return nil
}

func (p *Project) Save(_ context.Context) error {
	p.Saved++
	return nil
}

func (p *Project) SaveAs(_ context.Context, path string) error {
	p.SavedAs = append(p.SavedAs, path)
	p.ProjectPath = path
	return nil
}
