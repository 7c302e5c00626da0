// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/studiopipe/go-premiere/internal/logger"
	"github.com/studiopipe/go-premiere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	info  models.SessionInfo
	err   error
	calls atomic.Int64
}

func (s *stubSource) GetInfo(_ context.Context) (models.SessionInfo, error) {
	s.calls.Add(1)
	if s.err != nil {
		return models.SessionInfo{}, s.err
	}
	return s.info, nil
}

func TestSnapshotWorker_EmitsOnTick(t *testing.T) {
	source := &stubSource{info: models.SessionInfo{
		Projects: []models.ProjectInfo{{Name: "demo"}},
	}}

	emitted := make(chan models.SessionInfo, 1)
	worker := NewSnapshotWorker(source, 10*time.Millisecond, func(info models.SessionInfo) {
		select {
		case emitted <- info:
		default:
		}
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	select {
	case info := <-emitted:
		require.Len(t, info.Projects, 1)
		assert.Equal(t, "demo", info.Projects[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot emitted")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on cancel")
	}
}

func TestSnapshotWorker_KeepsRunningOnError(t *testing.T) {
	source := &stubSource{err: errors.New("host unreachable")}

	worker := NewSnapshotWorker(source, 5*time.Millisecond, func(models.SessionInfo) {
		t.Error("emit must not be called when the snapshot fails")
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	worker.Run(ctx)

	// Errors are logged and the loop keeps ticking.
	assert.Greater(t, source.calls.Load(), int64(1))
}

func TestNewSnapshotWorker_DefaultInterval(t *testing.T) {
	worker := NewSnapshotWorker(&stubSource{}, 0, func(models.SessionInfo) {}, logger.Nop())

	assert.Equal(t, 30*time.Second, worker.interval)
}
