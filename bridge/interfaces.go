// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

// Package bridge defines the boundary between the adapter layer and the
// host application's scripting engine.
//
// Each entity kind the host exposes (application, project, project item,
// sequence, track, track item) gets its own capability interface with a
// fixed method set. Implementations hold an opaque handle to the
// host-side object and forward every call synchronously; the host owns
// the object's lifetime, dropping a Go value never affects it.
//
// The host scripting engine is single-threaded and not guaranteed
// reentrant, so implementations must serialize all calls, even when the
// caller uses several entities concurrently.
//
// Error values defined in errors.go are returned wrapped so that callers
// can use [errors.Is] for transport-agnostic handling (e.g.
// [ErrUnavailable] when the host cannot be reached).
package bridge

import (
	"context"

	"github.com/studiopipe/go-premiere/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/bridge_mock.go -package=mock

// App is the host application entry point: the current session.
type App interface {
	// CurrentProject returns the project currently open in the host, or
	// (nil, nil) when no project is open.
	CurrentProject(ctx context.Context) (Project, error)

	// Projects returns every project open in the host session.
	Projects(ctx context.Context) ([]Project, error)

	// ImportFiles asks the host to import the given media files into the
	// target bin. The host's return value is unreliable; callers must
	// verify the import by other means (see premiere.Bin).
	ImportFiles(ctx context.Context, paths []string, suppressUI bool, target ProjectItem, importAsNumberedStills bool) error
}

// Project is an open host project.
type Project interface {
	// DocumentID returns the host's stable identifier for the project
	// document.
	DocumentID(ctx context.Context) (string, error)

	// Name returns the project name.
	Name(ctx context.Context) (string, error)

	// Path returns the filesystem path of the project file.
	Path(ctx context.Context) (string, error)

	// RootItem returns the root project item. The root is itself a bin.
	RootItem(ctx context.Context) (ProjectItem, error)

	// Sequences returns every sequence in the project.
	Sequences(ctx context.Context) ([]Sequence, error)

	// ActiveSequence returns the sequence currently active in the host
	// UI, or (nil, nil) when none is active.
	ActiveSequence(ctx context.Context) (Sequence, error)

	// InsertionBin returns the bin the host would import new media into.
	InsertionBin(ctx context.Context) (ProjectItem, error)

	// AddPropertyToMetadataSchema registers a property (identifier,
	// display label, numeric value type) in the project metadata schema.
	// The schema cannot be read back; conflicting registrations are
	// silently ignored by the host.
	AddPropertyToMetadataSchema(ctx context.Context, name, label string, valueType models.PropertyType) error

	// Save saves the project in place.
	Save(ctx context.Context) error

	// SaveAs saves the project to the given path. The host does not
	// create missing parent directories.
	SaveAs(ctx context.Context, path string) error
}

// ProjectItem is a node in a project's item tree: a bin, a clip, a file,
// or the root.
type ProjectItem interface {
	// Name returns the item name.
	Name(ctx context.Context) (string, error)

	// SetName renames the item.
	SetName(ctx context.Context, name string) error

	// NodeID returns the host's internal id for the item.
	NodeID(ctx context.Context) (string, error)

	// Type returns the host's type code for the item.
	Type(ctx context.Context) (models.ItemType, error)

	// IsSequence reports whether a clip-typed item is actually a
	// sequence (the host classifies sequences as clips).
	IsSequence(ctx context.Context) (bool, error)

	// ChildCount returns the number of children the host reports for
	// this item.
	ChildCount(ctx context.Context) (int, error)

	// Child returns the child at index i. The host sometimes returns
	// null entries, in which case Child returns (nil, nil); callers must
	// tolerate that. Indexes must stay below ChildCount — iterating the
	// children any other way is known to loop forever on some projects.
	Child(ctx context.Context, i int) (ProjectItem, error)

	// CreateBin creates a child bin with the given name and returns it.
	CreateBin(ctx context.Context, name string) (ProjectItem, error)

	// MediaPath returns the media file path backing a clip item.
	MediaPath(ctx context.Context) (string, error)

	// CanChangeMediaPath reports whether the host allows relinking the
	// item's media.
	CanChangeMediaPath(ctx context.Context) (bool, error)

	// ChangeMediaPath relinks the item to the media at path.
	ChangeMediaPath(ctx context.Context, path string) error

	// Metadata returns the raw project metadata blob for this item, an
	// XMP text fragment in which only properties that were explicitly
	// set ever appear.
	Metadata(ctx context.Context) (string, error)

	// SetMetadata stores the given blob as the item's project metadata.
	// updatedFields names the properties being written so the host can
	// reconcile its schema.
	SetMetadata(ctx context.Context, blob string, updatedFields []string) error
}

// Sequence is an editable composition of tracks (a timeline).
type Sequence interface {
	// SequenceID returns the host's identifier for the sequence.
	SequenceID(ctx context.Context) (string, error)

	// Name returns the sequence name.
	Name(ctx context.Context) (string, error)

	// ProjectItem returns the project item backing the sequence.
	ProjectItem(ctx context.Context) (ProjectItem, error)

	// Timebase returns the number of ticks per second for this sequence.
	Timebase(ctx context.Context) (int64, error)

	// InPointTicks returns the sequence in point in ticks.
	InPointTicks(ctx context.Context) (int64, error)

	// OutPointTicks returns the sequence out point in ticks.
	OutPointTicks(ctx context.Context) (int64, error)

	// ZeroPointTicks returns the sequence zero point in ticks.
	ZeroPointTicks(ctx context.Context) (int64, error)

	// EndTicks returns the sequence end in ticks.
	EndTicks(ctx context.Context) (int64, error)

	// VideoTrackCount returns the number of video tracks.
	VideoTrackCount(ctx context.Context) (int, error)

	// VideoTrack returns the video track at index i. Indexes must stay
	// below VideoTrackCount (same host iteration caveat as
	// ProjectItem.Child).
	VideoTrack(ctx context.Context, i int) (Track, error)

	// AudioTrackCount returns the number of audio tracks.
	AudioTrackCount(ctx context.Context) (int, error)

	// AudioTrack returns the audio track at index i.
	AudioTrack(ctx context.Context, i int) (Track, error)
}

// Track is a lane within a sequence holding ordered clip placements.
type Track interface {
	// ID returns the track id within its sequence.
	ID(ctx context.Context) (int, error)

	// Name returns the track name.
	Name(ctx context.Context) (string, error)

	// MediaType returns the track media type ("Video" or "Audio").
	MediaType(ctx context.Context) (string, error)

	// IsMuted reports whether the track is muted.
	IsMuted(ctx context.Context) (bool, error)

	// ClipCount returns the number of clips placed on the track.
	ClipCount(ctx context.Context) (int, error)

	// Clip returns the clip placement at index i. Indexes must stay
	// below ClipCount.
	Clip(ctx context.Context, i int) (TrackItem, error)

	// TransitionCount returns the number of transitions on the track.
	TransitionCount(ctx context.Context) (int, error)

	// Transition returns the transition at index i.
	Transition(ctx context.Context, i int) (TrackItem, error)
}

// TrackItem is an instance of a clip (or a transition) placed on a
// track.
type TrackItem interface {
	// Name returns the track item name.
	Name(ctx context.Context) (string, error)

	// ProjectItem returns the project item providing media for this
	// placement, or (nil, nil) for items without one (transitions,
	// synthetic items).
	ProjectItem(ctx context.Context) (ProjectItem, error)

	// MediaType returns the item media type.
	MediaType(ctx context.Context) (string, error)

	// StartTicks returns the placement start on the track in ticks.
	StartTicks(ctx context.Context) (int64, error)

	// EndTicks returns the placement end on the track in ticks.
	EndTicks(ctx context.Context) (int64, error)

	// InPointTicks returns the source in point in ticks.
	InPointTicks(ctx context.Context) (int64, error)

	// OutPointTicks returns the source out point in ticks.
	OutPointTicks(ctx context.Context) (int64, error)

	// DurationTicks returns the placement duration in ticks.
	DurationTicks(ctx context.Context) (int64, error)

	// IsSelected reports whether the item is selected in the host UI.
	IsSelected(ctx context.Context) (bool, error)

	// Speed returns the playback speed of the item.
	Speed(ctx context.Context) (float64, error)

	// IsAdjustmentLayer reports whether the item is an adjustment layer.
	IsAdjustmentLayer(ctx context.Context) (bool, error)
}
