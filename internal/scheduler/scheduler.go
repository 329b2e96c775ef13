package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"campaign_pulse/internal/domain"
)

// Runner defines the interface for triggering a pipeline cycle.
type Runner interface {
	Run(ctx context.Context, trigger string) (*domain.ScrapingRun, error)
}

type Scheduler struct {
	runner     Runner
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
	alive      atomic.Bool
}

func NewScheduler(runner Runner, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.alive.Store(true)
	defer s.alive.Store(false)

	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// Running reports whether the scheduling loop is alive. Exposed for the
// health endpoint.
func (s *Scheduler) Running() bool {
	return s.alive.Load()
}

func (s *Scheduler) runCycle(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.runner.Run(runCtx, domain.TriggerScheduler); err != nil {
		if errors.Is(err, domain.ErrConflictingRun) {
			s.logger.Info("cycle skipped, previous run still in flight")
			return
		}
		s.logger.Error("cycle failed", "error", err)
	}
}
