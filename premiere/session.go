// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package premiere

import (
	"context"
	"fmt"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/internal/logger"
	"github.com/studiopipe/go-premiere/models"
)

// Session produces serializable snapshots of the host session. It holds
// the bridge explicitly; there is no hidden process-wide engine lookup.
type Session struct {
	app bridge.App

	logger *logger.Logger
}

// NewSession constructs a Session over the given bridge.
func NewSession(app bridge.App, log *logger.Logger) *Session {
	return &Session{app: app, logger: log}
}

// GetInfo returns a snapshot of every open project with its sequences,
// tracks, clips and transitions. Only sequences whose name equals the
// project's active sequence name are included, and every tick value is
// converted to seconds by dividing by the owning sequence's timebase.
//
// Name matching means two sequences sharing the active sequence's name
// are both reported, and a project whose active sequence was renamed
// mid-snapshot comes back with zero sequences. Both follow from the
// host only exposing the active sequence as an object, not as a stable
// id to compare against.
func (s *Session) GetInfo(ctx context.Context) (models.SessionInfo, error) {
	projects, err := s.app.Projects(ctx)
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("get open projects: %w", err)
	}

	info := models.SessionInfo{Projects: make([]models.ProjectInfo, 0, len(projects))}
	for _, prj := range projects {
		projectInfo, err := s.projectInfo(ctx, prj)
		if err != nil {
			return models.SessionInfo{}, err
		}
		info.Projects = append(info.Projects, projectInfo)
	}

	return info, nil
}

func (s *Session) projectInfo(ctx context.Context, prj bridge.Project) (models.ProjectInfo, error) {
	documentID, err := prj.DocumentID(ctx)
	if err != nil {
		return models.ProjectInfo{}, fmt.Errorf("get project document id: %w", err)
	}
	name, err := prj.Name(ctx)
	if err != nil {
		return models.ProjectInfo{}, fmt.Errorf("get project name: %w", err)
	}
	path, err := prj.Path(ctx)
	if err != nil {
		return models.ProjectInfo{}, fmt.Errorf("get project path: %w", err)
	}

	sequences, activeName, err := s.sequenceInfos(ctx, prj)
	if err != nil {
		return models.ProjectInfo{}, fmt.Errorf("snapshot project %q sequences: %w", name, err)
	}

	s.logger.Debug().
		Str("project", name).
		Str("active_sequence", activeName).
		Int("sequences", len(sequences)).
		Msg("project snapshot collected")

	return models.ProjectInfo{
		DocumentID:     documentID,
		Name:           name,
		Path:           path,
		Sequences:      sequences,
		ActiveSequence: activeName,
	}, nil
}

func (s *Session) sequenceInfos(ctx context.Context, prj bridge.Project) ([]models.SequenceInfo, string, error) {
	active, err := prj.ActiveSequence(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("get active sequence: %w", err)
	}
	if active == nil {
		return []models.SequenceInfo{}, "", nil
	}

	activeName, err := active.Name(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("get active sequence name: %w", err)
	}

	sequences, err := prj.Sequences(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("get sequences: %w", err)
	}

	infos := make([]models.SequenceInfo, 0, 1)
	for _, seq := range sequences {
		name, err := seq.Name(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("get sequence name: %w", err)
		}
		if name != activeName {
			continue
		}

		info, err := s.sequenceInfo(ctx, seq, name)
		if err != nil {
			return nil, "", err
		}
		infos = append(infos, info)
	}

	return infos, activeName, nil
}

func (s *Session) sequenceInfo(ctx context.Context, seq bridge.Sequence, name string) (models.SequenceInfo, error) {
	timebase, err := seq.Timebase(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence timebase: %w", err)
	}
	if timebase == 0 {
		return models.SequenceInfo{}, fmt.Errorf("%w: sequence %q", ErrZeroTimebase, name)
	}

	sequenceID, err := seq.SequenceID(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence id: %w", err)
	}
	inPoint, err := seq.InPointTicks(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence in point: %w", err)
	}
	outPoint, err := seq.OutPointTicks(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence out point: %w", err)
	}
	zeroPoint, err := seq.ZeroPointTicks(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence zero point: %w", err)
	}
	end, err := seq.EndTicks(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("get sequence end: %w", err)
	}

	videoCount, err := seq.VideoTrackCount(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("count video tracks: %w", err)
	}
	videoTracks, err := s.trackInfos(ctx, timebase, videoCount, seq.VideoTrack)
	if err != nil {
		return models.SequenceInfo{}, err
	}

	audioCount, err := seq.AudioTrackCount(ctx)
	if err != nil {
		return models.SequenceInfo{}, fmt.Errorf("count audio tracks: %w", err)
	}
	audioTracks, err := s.trackInfos(ctx, timebase, audioCount, seq.AudioTrack)
	if err != nil {
		return models.SequenceInfo{}, err
	}

	return models.SequenceInfo{
		SequenceID:  sequenceID,
		Name:        name,
		InPoint:     ticksToSeconds(inPoint, timebase),
		OutPoint:    ticksToSeconds(outPoint, timebase),
		Timebase:    timebase,
		ZeroPoint:   ticksToSeconds(zeroPoint, timebase),
		End:         ticksToSeconds(end, timebase),
		VideoTracks: videoTracks,
		AudioTracks: audioTracks,
	}, nil
}

func (s *Session) trackInfos(ctx context.Context, timebase int64, count int, trackAt func(context.Context, int) (bridge.Track, error)) ([]models.TrackInfo, error) {
	infos := make([]models.TrackInfo, 0, count)
	for i := 0; i < count; i++ {
		track, err := trackAt(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get track %d: %w", i, err)
		}

		info, err := s.trackInfo(ctx, track, timebase)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *Session) trackInfo(ctx context.Context, track bridge.Track, timebase int64) (models.TrackInfo, error) {
	id, err := track.ID(ctx)
	if err != nil {
		return models.TrackInfo{}, fmt.Errorf("get track id: %w", err)
	}
	name, err := track.Name(ctx)
	if err != nil {
		return models.TrackInfo{}, fmt.Errorf("get track name: %w", err)
	}
	mediaType, err := track.MediaType(ctx)
	if err != nil {
		return models.TrackInfo{}, fmt.Errorf("get track media type: %w", err)
	}
	isMuted, err := track.IsMuted(ctx)
	if err != nil {
		return models.TrackInfo{}, fmt.Errorf("get track muted state: %w", err)
	}

	clips, err := s.clipInfos(ctx, track, timebase)
	if err != nil {
		return models.TrackInfo{}, err
	}
	transitions, err := s.transitionInfos(ctx, track, timebase)
	if err != nil {
		return models.TrackInfo{}, err
	}

	return models.TrackInfo{
		ID:          id,
		Name:        name,
		MediaType:   mediaType,
		Clips:       clips,
		Transitions: transitions,
		IsMuted:     isMuted,
	}, nil
}

func (s *Session) clipInfos(ctx context.Context, track bridge.Track, timebase int64) ([]models.TrackClipInfo, error) {
	count, err := track.ClipCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count track clips: %w", err)
	}

	infos := make([]models.TrackClipInfo, 0, count)
	for i := 0; i < count; i++ {
		clip, err := track.Clip(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get track clip %d: %w", i, err)
		}

		name, err := clip.Name(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip name: %w", err)
		}
		duration, err := clip.DurationTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip duration: %w", err)
		}
		start, err := clip.StartTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip start: %w", err)
		}
		end, err := clip.EndTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip end: %w", err)
		}
		inPoint, err := clip.InPointTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip in point: %w", err)
		}
		outPoint, err := clip.OutPointTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip out point: %w", err)
		}
		mediaType, err := clip.MediaType(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip media type: %w", err)
		}
		isSelected, err := clip.IsSelected(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip selection: %w", err)
		}
		speed, err := clip.Speed(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip speed: %w", err)
		}
		isAdjustment, err := clip.IsAdjustmentLayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip adjustment state: %w", err)
		}

		// Not every placement has source media behind it.
		var sourcePath string
		sourceItem, err := clip.ProjectItem(ctx)
		if err != nil {
			return nil, fmt.Errorf("get track clip source item: %w", err)
		}
		if sourceItem != nil {
			sourcePath, err = sourceItem.MediaPath(ctx)
			if err != nil {
				return nil, fmt.Errorf("get track clip media path: %w", err)
			}
		}

		infos = append(infos, models.TrackClipInfo{
			Name:              name,
			Duration:          ticksToSeconds(duration, timebase),
			Start:             ticksToSeconds(start, timebase),
			End:               ticksToSeconds(end, timebase),
			InPoint:           ticksToSeconds(inPoint, timebase),
			OutPoint:          ticksToSeconds(outPoint, timebase),
			MediaType:         mediaType,
			SourcePath:        sourcePath,
			IsSelected:        isSelected,
			Speed:             speed,
			IsAdjustmentLayer: isAdjustment,
		})
	}

	return infos, nil
}

func (s *Session) transitionInfos(ctx context.Context, track bridge.Track, timebase int64) ([]models.TransitionInfo, error) {
	count, err := track.TransitionCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count track transitions: %w", err)
	}

	infos := make([]models.TransitionInfo, 0, count)
	for i := 0; i < count; i++ {
		transition, err := track.Transition(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("get track transition %d: %w", i, err)
		}

		name, err := transition.Name(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition name: %w", err)
		}
		duration, err := transition.DurationTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition duration: %w", err)
		}
		start, err := transition.StartTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition start: %w", err)
		}
		end, err := transition.EndTicks(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition end: %w", err)
		}
		mediaType, err := transition.MediaType(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition media type: %w", err)
		}
		speed, err := transition.Speed(ctx)
		if err != nil {
			return nil, fmt.Errorf("get transition speed: %w", err)
		}

		infos = append(infos, models.TransitionInfo{
			Name:      name,
			Duration:  ticksToSeconds(duration, timebase),
			Start:     ticksToSeconds(start, timebase),
			End:       ticksToSeconds(end, timebase),
			MediaType: mediaType,
			Speed:     speed,
		})
	}

	return infos, nil
}

func ticksToSeconds(ticks, timebase int64) float64 {
	return float64(ticks) / float64(timebase)
}
