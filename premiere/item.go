package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

// Item is the common wrapper around a host project item handle. Bin and
// Clip embed it; it carries the accessors every item kind shares plus
// the metadata property operations.
type Item struct {
	h bridge.ProjectItem
}

// NewItem wraps the given project item handle.
func NewItem(h bridge.ProjectItem) *Item {
	return &Item{h: h}
}

// Handle returns the underlying bridge handle.
func (i *Item) Handle() bridge.ProjectItem {
	return i.h
}

// Name returns the item name.
func (i *Item) Name(ctx context.Context) (string, error) {
	return i.h.Name(ctx)
}

// SetName renames the item.
func (i *Item) SetName(ctx context.Context, name string) error {
	return i.h.SetName(ctx, name)
}

// NodeID returns the host's internal id for the item.
func (i *Item) NodeID(ctx context.Context) (string, error) {
	return i.h.NodeID(ctx)
}

// Metadata returns the value of the given metadata property, e.g.
// "myproperty" or "Column.PropertyBool.Hide" for standard properties.
//
// Only properties that have been explicitly set appear in the host's
// metadata blob, so ok == false cannot distinguish "never set" from
// "set to an empty value the host dropped"; callers must treat both as
// absent.
func (i *Item) Metadata(ctx context.Context, property string) (string, bool, error) {
	blob, err := i.h.Metadata(ctx)
	if err != nil {
		return "", false, fmt.Errorf("get metadata blob: %w", err)
	}

	value, ok := metadataValue(blob, property)
	return value, ok, nil
}

// SetMetadata sets the given metadata property and returns the value
// read back after the write.
//
// The write is a best-effort text patch of the metadata blob (see
// metadata.go). When the property was never set and the blob contains
// no property entry to repurpose, the patch is a no-op: no error is
// returned, the write is simply lost and ok is false on read-back.
func (i *Item) SetMetadata(ctx context.Context, property, value string) (string, bool, error) {
	blob, err := i.h.Metadata(ctx)
	if err != nil {
		return "", false, fmt.Errorf("get metadata blob: %w", err)
	}

	patched := patchMetadata(blob, property, value)
	// Passing the property name lets the host reconcile its schema even
	// when the patch repurposed another property's entry.
	if err = i.h.SetMetadata(ctx, patched, []string{property}); err != nil {
		return "", false, fmt.Errorf("set metadata blob: %w", err)
	}

	return i.Metadata(ctx, property)
}
