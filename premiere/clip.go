package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
)

// Clip wraps a host clip (source media) item.
type Clip struct {
	*Item
}

// NewClip wraps the given project item handle as a clip.
func NewClip(h bridge.ProjectItem) *Clip {
	return &Clip{Item: NewItem(h)}
}

// MediaPath returns the media file path backing this clip.
func (c *Clip) MediaPath(ctx context.Context) (string, error) {
	return c.h.MediaPath(ctx)
}

// SetMediaPath relinks this clip to the media at path. Returns
// ErrMediaPathLocked when the host reports the path as immutable.
func (c *Clip) SetMediaPath(ctx context.Context, path string) error {
	canChange, err := c.h.CanChangeMediaPath(ctx)
	if err != nil {
		return fmt.Errorf("check media path mutability: %w", err)
	}
	if !canChange {
		name, nameErr := c.h.Name(ctx)
		if nameErr != nil {
			name = "<unknown>"
		}
		return fmt.Errorf("%w on %s", ErrMediaPathLocked, name)
	}

	return c.h.ChangeMediaPath(ctx, path)
}
