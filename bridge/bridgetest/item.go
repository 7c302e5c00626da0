package bridgetest

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

var nextID int

func newNodeID() string {
	nextID++
	return fmt.Sprintf("node-%d", nextID)
}

// Item is an in-memory [bridge.ProjectItem].
type Item struct {
	ItemName string
	ID       string
	Kind     models.ItemType

	// Sequence marks clip-typed items that are actually sequences.
	Sequence bool

	// Children may contain nil entries to simulate the host returning
	// null children.
	Children []*Item

	Media       string
	MediaLocked bool

	// Blob is the item's project metadata text.
	Blob string

	// MetadataWrites records the updatedFields of every SetMetadata
	// call.
	MetadataWrites [][]string
}

// NewBin builds a bin item with the given children.
func NewBin(name string, children ...*Item) *Item {
	return &Item{ItemName: name, ID: newNodeID(), Kind: models.ItemTypeBin, Children: children}
}

// NewRoot builds a root item with the given children. The root is
// itself a bin as far as traversal is concerned.
func NewRoot(children ...*Item) *Item {
	return &Item{ItemName: "root", ID: newNodeID(), Kind: models.ItemTypeRoot, Children: children}
}

// NewClip builds a clip item backed by the media at path.
func NewClip(name, path string) *Item {
	return &Item{ItemName: name, ID: newNodeID(), Kind: models.ItemTypeClip, Media: path}
}

// NewSequenceItem builds a clip-typed item that reports itself as a
// sequence, the way the host classifies sequences.
func NewSequenceItem(name string) *Item {
	return &Item{ItemName: name, ID: newNodeID(), Kind: models.ItemTypeClip, Sequence: true}
}

var _ bridge.ProjectItem = (*Item)(nil)

func (i *Item) Name(_ context.Context) (string, error) {
	return i.ItemName, nil
}

func (i *Item) SetName(_ context.Context, name string) error {
	i.ItemName = name
	return nil
}

func (i *Item) NodeID(_ context.Context) (string, error) {
	return i.ID, nil
}

func (i *Item) Type(_ context.Context) (models.ItemType, error) {
	return i.Kind, nil
}

func (i *Item) IsSequence(_ context.Context) (bool, error) {
	return i.Sequence, nil
}

func (i *Item) ChildCount(_ context.Context) (int, error) {
	return len(i.Children), nil
}

func (i *Item) Child(_ context.Context, idx int) (bridge.ProjectItem, error) {
	if idx < 0 || idx >= len(i.Children) {
		return nil, fmt.Errorf("child index %d out of range", idx)
	}
	child := i.Children[idx]
	if child == nil {
		return nil, nil
	}
	return child, nil
}

func (i *Item) CreateBin(_ context.Context, name string) (bridge.ProjectItem, error) {
	bin := NewBin(name)
	i.Children = append(i.Children, bin)
	return bin, nil
}

func (i *Item) MediaPath(_ context.Context) (string, error) {
	return i.Media, nil
}

func (i *Item) CanChangeMediaPath(_ context.Context) (bool, error) {
	return !i.MediaLocked, nil
}

func (i *Item) ChangeMediaPath(_ context.Context, path string) error {
	i.Media = path
	return nil
}

func (i *Item) Metadata(_ context.Context) (string, error) {
	return i.Blob, nil
}

func (i *Item) SetMetadata(_ context.Context, blob string, updatedFields []string) error {
	i.Blob = blob
	i.MetadataWrites = append(i.MetadataWrites, updatedFields)
	return nil
}
