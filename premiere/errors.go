package premiere

import "errors"

var (
	// ErrNoProject is returned when the host has no project open.
	ErrNoProject = errors.New("no current project")

	// ErrInvalidBinPath is returned for a bin path with no usable
	// segments.
	ErrInvalidBinPath = errors.New("invalid bin path")

	// ErrUnsupportedPropertyType is returned for a metadata property
	// type name outside the known vocabulary.
	ErrUnsupportedPropertyType = errors.New("unsupported property type")

	// ErrClipNotCreated is returned when an import left the bin's child
	// count unchanged.
	ErrClipNotCreated = errors.New("unable to create a clip")

	// ErrClipNotRetrieved is returned when the child added by an import
	// does not report clip type.
	ErrClipNotRetrieved = errors.New("unable to retrieve the created clip")

	// ErrMediaPathLocked is returned when the host reports an item's
	// media path as immutable.
	ErrMediaPathLocked = errors.New("media path cannot be changed")

	// ErrZeroTimebase is returned when a sequence reports a zero
	// timebase, which would make every tick conversion divide by zero.
	ErrZeroTimebase = errors.New("sequence timebase is zero")
)
