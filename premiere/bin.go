package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

// Bin wraps a host bin (folder) item.
type Bin struct {
	*Item
}

// NewBin wraps the given project item handle as a bin.
func NewBin(h bridge.ProjectItem) *Bin {
	return &Bin{Item: NewItem(h)}
}

// Clips returns all clips directly contained in this bin. Children are
// scanned by index up to the reported count; sequences are skipped even
// though the host classifies them as clips.
func (b *Bin) Clips(ctx context.Context) ([]*Clip, error) {
	count, err := b.h.ChildCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bin children: %w", err)
	}

	var clips []*Clip
	for i := 0; i < count; i++ {
		child, err := b.h.Child(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get bin child %d: %w", i, err)
		}
		if child == nil {
			continue
		}

		itemType, err := child.Type(ctx)
		if err != nil {
			return nil, fmt.Errorf("get bin child %d type: %w", i, err)
		}
		if itemType != models.ItemTypeClip {
			continue
		}

		isSequence, err := child.IsSequence(ctx)
		if err != nil {
			return nil, fmt.Errorf("check bin child %d sequence: %w", i, err)
		}
		if isSequence {
			continue
		}

		clips = append(clips, NewClip(child))
	}

	return clips, nil
}

// BinByName returns the immediate child bin with the given name, or
// (nil, nil) when there is none. Matching is case-sensitive and stops
// at the first hit.
func (b *Bin) BinByName(ctx context.Context, name string) (*Bin, error) {
	count, err := b.h.ChildCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bin children: %w", err)
	}

	for i := 0; i < count; i++ {
		child, err := b.h.Child(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get bin child %d: %w", i, err)
		}
		if child == nil {
			continue
		}

		itemType, err := child.Type(ctx)
		if err != nil {
			return nil, fmt.Errorf("get bin child %d type: %w", i, err)
		}
		if itemType != models.ItemTypeBin {
			continue
		}

		childName, err := child.Name(ctx)
		if err != nil {
			return nil, fmt.Errorf("get bin child %d name: %w", i, err)
		}
		if childName == name {
			return NewBin(child), nil
		}
	}

	return nil, nil
}

// CreateBin creates a child bin with the given name.
func (b *Bin) CreateBin(ctx context.Context, name string) (*Bin, error) {
	created, err := b.h.CreateBin(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create bin %q: %w", name, err)
	}
	return NewBin(created), nil
}

// EnsureBin returns the child bin with the given name, creating it when
// absent.
func (b *Bin) EnsureBin(ctx context.Context, name string) (*Bin, error) {
	found, err := b.BinByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}
	return b.CreateBin(ctx, name)
}

// CreateClipFromMedia imports the media file at mediaPath into this bin
// and returns the created clip.
//
// The host's import call does not reliably report success, so success
// is inferred from the bin's child count: unchanged count means the
// import failed (ErrClipNotCreated). The new child is assumed to be the
// last one by index; if it does not report clip type the import
// produced something unexpected (ErrClipNotRetrieved). This is a
// heuristic, not a confirmed protocol.
func (b *Bin) CreateClipFromMedia(ctx context.Context, app bridge.App, mediaPath string) (*Clip, error) {
	oldCount, err := b.h.ChildCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bin children: %w", err)
	}

	if err = app.ImportFiles(ctx, []string{mediaPath}, false, b.h, false); err != nil {
		return nil, fmt.Errorf("import %s: %w", mediaPath, err)
	}

	newCount, err := b.h.ChildCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("recount bin children: %w", err)
	}
	if newCount == oldCount {
		return nil, fmt.Errorf("%w for %s", ErrClipNotCreated, mediaPath)
	}

	last, err := b.h.Child(ctx, newCount-1)
	if err != nil {
		return nil, fmt.Errorf("get imported child: %w", err)
	}
	if last == nil {
		return nil, fmt.Errorf("%w for %s", ErrClipNotRetrieved, mediaPath)
	}

	itemType, err := last.Type(ctx)
	if err != nil {
		return nil, fmt.Errorf("get imported child type: %w", err)
	}
	if itemType != models.ItemTypeClip {
		return nil, fmt.Errorf("%w for %s", ErrClipNotRetrieved, mediaPath)
	}

	return NewClip(last), nil
}
