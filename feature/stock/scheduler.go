package stock

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Syncer runs one full synchronization.
type Syncer interface {
	SyncFull(ctx context.Context) (*SyncResult, error)
}

// Scheduler triggers SyncFull on a fixed interval.
type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runOnStart bool
	logger     *zap.Logger
}

// NewScheduler creates a scheduler from cfg.
func NewScheduler(syncer Syncer, cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		syncer:     syncer,
		interval:   cfg.Interval(),
		runOnStart: cfg.RunOnStart,
		logger:     logger,
	}
}

// Run blocks until ctx is done. Failed runs are logged and retried on the
// next tick only. With no interval it performs at most the start-up run.
func (s *Scheduler) Run(ctx context.Context) {
	if s.runOnStart {
		s.tick(ctx)
	}
	if s.interval <= 0 {
		return
	}

	s.logger.Info("Stock sync scheduler started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stock sync scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.syncer.SyncFull(ctx); err != nil {
		s.logger.Warn("Scheduled stock sync failed; serving previous snapshot", zap.Error(err))
	}
}
