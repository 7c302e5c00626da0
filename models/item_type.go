package models

// ItemType mirrors the host's ProjectItem type codes.
type ItemType int

const (
	// ItemTypeClip is a clip. Sequences report this type as well.
	ItemTypeClip ItemType = 1
	// ItemTypeBin is a bin (folder).
	ItemTypeBin ItemType = 2
	// ItemTypeRoot is the root item of a project.
	ItemTypeRoot ItemType = 3
	// ItemTypeFile is a file.
	ItemTypeFile ItemType = 4
)

// PropertyType is the numeric value-type code used when registering a
// property in the project metadata schema.
type PropertyType int

const (
	PropertyTypeInteger PropertyType = 0
	PropertyTypeReal    PropertyType = 1
	PropertyTypeString  PropertyType = 2
	PropertyTypeBoolean PropertyType = 3
)
