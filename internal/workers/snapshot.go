package workers

import (
	"context"
	"time"

	"github.com/studiopipe/go-premiere/internal/logger"
	"github.com/studiopipe/go-premiere/models"
)

// SnapshotSource produces session snapshots; satisfied by
// premiere.Session.
type SnapshotSource interface {
	GetInfo(ctx context.Context) (models.SessionInfo, error)
}

// SnapshotWorker collects a session snapshot on a ticker and hands it
// to emit. Snapshot errors are logged, not fatal; the host may simply
// have no project open yet.
type SnapshotWorker struct {
	source   SnapshotSource
	interval time.Duration
	emit     func(models.SessionInfo)

	logger *logger.Logger
}

// NewSnapshotWorker creates a SnapshotWorker. If interval is zero or
// negative it defaults to 30 seconds.
func NewSnapshotWorker(source SnapshotSource, interval time.Duration, emit func(models.SessionInfo), log *logger.Logger) *SnapshotWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &SnapshotWorker{source: source, interval: interval, emit: emit, logger: log}
}

// Run implements [Worker]. It blocks until ctx is cancelled, collecting
// and emitting a snapshot every interval.
func (w *SnapshotWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			info, err := w.source.GetInfo(ctx)
			if err != nil {
				w.logger.Error().Err(err).Msg("session snapshot failed")
				continue
			}
			w.emit(info)
		}
	}
}
