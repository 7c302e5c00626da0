// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package models

// SessionInfo is a serializable snapshot of the host session: every open
// project with its sequences, tracks, clips and transitions. It holds no
// live handles, only plain values, so it can be marshalled and handed to
// the pipeline integration as-is.
//
// Tick counts are converted to seconds by dividing by the owning
// sequence's timebase before they land here. JSON field names match the
// keys the host scripting API uses for the same values.
type SessionInfo struct {
	Projects []ProjectInfo `json:"projects"`
}

// ProjectInfo describes one open project.
type ProjectInfo struct {
	DocumentID string `json:"documentID"`
	Name       string `json:"name"`
	Path       string `json:"path"`

	// Sequences holds only the sequences whose name matches the
	// project's active sequence name.
	Sequences []SequenceInfo `json:"sequences"`

	// ActiveSequence is the name of the project's active sequence, empty
	// when the project has none.
	ActiveSequence string `json:"activeSequence"`
}

// SequenceInfo describes a sequence, with all time values in seconds.
type SequenceInfo struct {
	SequenceID  string      `json:"sequenceID"`
	Name        string      `json:"name"`
	InPoint     float64     `json:"inPoint"`
	OutPoint    float64     `json:"outPoint"`
	Timebase    int64       `json:"timebase"`
	ZeroPoint   float64     `json:"zeroPoint"`
	End         float64     `json:"end"`
	VideoTracks []TrackInfo `json:"videoTracks"`
	AudioTracks []TrackInfo `json:"audioTracks"`
}

// TrackInfo describes one track of a sequence.
type TrackInfo struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	MediaType   string           `json:"mediaType"`
	Clips       []TrackClipInfo  `json:"clips"`
	Transitions []TransitionInfo `json:"transitions"`
	IsMuted     bool             `json:"isMuted"`
}

// TrackClipInfo describes a clip placed on a track.
type TrackClipInfo struct {
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	InPoint   float64 `json:"inPoint"`
	OutPoint  float64 `json:"outPoint"`
	MediaType string  `json:"mediaType"`

	// SourcePath is the media path of the source clip, empty when the
	// track item has no source media.
	SourcePath string `json:"source_path_clip"`

	IsSelected        bool    `json:"isSelected"`
	Speed             float64 `json:"speed"`
	IsAdjustmentLayer bool    `json:"isAdjustmentLayer"`
}

// TransitionInfo describes a transition placed on a track.
type TransitionInfo struct {
	Name      string  `json:"name"`
	Duration  float64 `json:"duration"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	MediaType string  `json:"mediaType"`
	Speed     float64 `json:"speed"`
}
