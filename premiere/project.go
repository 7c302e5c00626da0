package premiere

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/models"
)

// Project wraps an open host project.
type Project struct {
	p bridge.Project
}

// CurrentProject returns the project currently open in the host.
// Returns ErrNoProject when the host has none.
func CurrentProject(ctx context.Context, app bridge.App) (*Project, error) {
	p, err := app.CurrentProject(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current project: %w", err)
	}
	if p == nil {
		return nil, ErrNoProject
	}
	return NewProject(p), nil
}

// NewProject wraps the given project handle.
func NewProject(p bridge.Project) *Project {
	return &Project{p: p}
}

// Handle returns the underlying bridge handle.
func (p *Project) Handle() bridge.Project {
	return p.p
}

// Name returns the project name.
func (p *Project) Name(ctx context.Context) (string, error) {
	return p.p.Name(ctx)
}

// Path returns the filesystem path of the project file.
func (p *Project) Path(ctx context.Context) (string, error) {
	return p.p.Path(ctx)
}

// NodeID returns the internal id of the project's root item. The
// project itself is not a project item, but its root item is.
func (p *Project) NodeID(ctx context.Context) (string, error) {
	root, err := p.p.RootItem(ctx)
	if err != nil {
		return "", fmt.Errorf("get root item: %w", err)
	}
	return root.NodeID(ctx)
}

// RootBin returns the project's root item as a bin. The root item is
// itself a bin.
func (p *Project) RootBin(ctx context.Context) (*Bin, error) {
	root, err := p.p.RootItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("get root item: %w", err)
	}
	return NewBin(root), nil
}

// Bins returns every bin in the project tree, root included, each
// exactly once. The tree is walked with an explicit stack and children
// are scanned by index up to the reported count: host-native iteration
// is known to return null entries or loop forever on some projects.
// The resulting order is stack-pop order, not insertion order.
func (p *Project) Bins(ctx context.Context) ([]*Bin, error) {
	root, err := p.p.RootItem(ctx)
	if err != nil {
		return nil, fmt.Errorf("get root item: %w", err)
	}

	var bins []*Bin
	stack := []bridge.ProjectItem{root}
	for len(stack) > 0 {
		bin := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count, err := bin.ChildCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count bin children: %w", err)
		}
		for i := 0; i < count; i++ {
			child, err := bin.Child(ctx, i)
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
			if itemType == models.ItemTypeBin {
				stack = append(stack, child)
			}
		}

		bins = append(bins, NewBin(bin))
	}

	return bins, nil
}

// Clips returns every clip in the project, from every bin.
func (p *Project) Clips(ctx context.Context) ([]*Clip, error) {
	bins, err := p.Bins(ctx)
	if err != nil {
		return nil, err
	}

	var clips []*Clip
	for _, bin := range bins {
		binClips, err := bin.Clips(ctx)
		if err != nil {
			return nil, err
		}
		clips = append(clips, binClips...)
	}

	return clips, nil
}

// ClipByID returns the clip with the given node id, or (nil, nil) when
// no clip matches.
func (p *Project) ClipByID(ctx context.Context, nodeID string) (*Clip, error) {
	clips, err := p.Clips(ctx)
	if err != nil {
		return nil, err
	}

	for _, clip := range clips {
		id, err := clip.NodeID(ctx)
		if err != nil {
			return nil, fmt.Errorf("get clip node id: %w", err)
		}
		if id == nodeID {
			return clip, nil
		}
	}

	return nil, nil
}

// Timelines returns every timeline (sequence) in the project.
func (p *Project) Timelines(ctx context.Context) ([]*Timeline, error) {
	sequences, err := p.p.Sequences(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sequences: %w", err)
	}

	timelines := make([]*Timeline, 0, len(sequences))
	for _, seq := range sequences {
		timelines = append(timelines, NewTimeline(seq))
	}
	return timelines, nil
}

// CurrentTimeline returns the active timeline, or (nil, nil) when no
// timeline is active.
func (p *Project) CurrentTimeline(ctx context.Context) (*Timeline, error) {
	seq, err := p.p.ActiveSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active sequence: %w", err)
	}
	if seq == nil {
		return nil, nil
	}
	return NewTimeline(seq), nil
}

// InsertionBin returns the bin the host would import new media into.
func (p *Project) InsertionBin(ctx context.Context) (*Bin, error) {
	item, err := p.p.InsertionBin(ctx)
	if err != nil {
		return nil, fmt.Errorf("get insertion bin: %w", err)
	}
	return NewBin(item), nil
}

// BinByName returns the bin with the given name directly under the
// project root, or (nil, nil) when there is none.
func (p *Project) BinByName(ctx context.Context, name string) (*Bin, error) {
	root, err := p.RootBin(ctx)
	if err != nil {
		return nil, err
	}
	return root.BinByName(ctx, name)
}

// CreateBin creates a bin with the given name under the project root.
func (p *Project) CreateBin(ctx context.Context, name string) (*Bin, error) {
	root, err := p.RootBin(ctx)
	if err != nil {
		return nil, err
	}
	return root.CreateBin(ctx, name)
}

// EnsureBin returns the bin with the given name under the project root,
// creating it when absent.
func (p *Project) EnsureBin(ctx context.Context, name string) (*Bin, error) {
	root, err := p.RootBin(ctx)
	if err != nil {
		return nil, err
	}
	return root.EnsureBin(ctx, name)
}

// EnsureBinPath ensures that bins exist for every segment of the given
// slash-delimited path, starting from the project root, and returns the
// deepest bin. Leading, trailing and doubled slashes are ignored, so
// "/a//b/" and "a/b" name the same bin. A path with no usable segments
// fails with ErrInvalidBinPath.
func (p *Project) EnsureBinPath(ctx context.Context, path string) (*Bin, error) {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBinPath, path)
	}

	current, err := p.EnsureBin(ctx, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = current.EnsureBin(ctx, part)
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}

// AddMetadataProperty registers a property (identifier, display label,
// type name) in the project metadata schema. The schema cannot be read
// back, so the property is registered blindly: conflicts with an
// existing property do not fail, but its label or type is not changed
// either.
//
// propertyType accepts int/integer, real/float, str/string and
// bool/boolean, case-insensitively; anything else fails with
// ErrUnsupportedPropertyType.
func (p *Project) AddMetadataProperty(ctx context.Context, name, label, propertyType string) error {
	valueType, err := ParsePropertyType(propertyType)
	if err != nil {
		return err
	}

	if err = p.p.AddPropertyToMetadataSchema(ctx, name, label, valueType); err != nil {
		return fmt.Errorf("add metadata schema property %q: %w", name, err)
	}
	return nil
}

// Save saves the project in place and returns its path.
func (p *Project) Save(ctx context.Context) (string, error) {
	if err := p.p.Save(ctx); err != nil {
		return "", fmt.Errorf("save project: %w", err)
	}
	return p.Path(ctx)
}

// SaveAs saves the project to the given path and returns the project's
// path afterwards. The host does not create missing directories when
// saving, so the target's parent directory is created first.
func (p *Project) SaveAs(ctx context.Context, path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("ensure project folder: %w", err)
	}
	if err := p.p.SaveAs(ctx, path); err != nil {
		return "", fmt.Errorf("save project as %s: %w", path, err)
	}
	return p.Path(ctx)
}
