package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bolsa-pipeline/internal/model"
)

// Runnable is the single-run surface the scheduler drives.
type Runnable interface {
	Run(ctx context.Context) (*model.RunSummary, error)
}

// Scheduler executes pipeline runs on a fixed interval, starting with an
// immediate run.
type Scheduler struct {
	interval time.Duration
	runner   Runnable
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a Scheduler driving runner every interval.
func NewScheduler(interval time.Duration, runner Runnable, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		interval: interval,
		runner:   runner,
		logger:   logger,
	}
}

// Start begins the run loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop()

	s.logger.Info("scheduler started", "interval", s.interval)
	return nil
}

// Stop gracefully shuts down the scheduler, waiting for an in-flight run.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run immediately on start.
	s.runOnce()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

// runOnce executes one run. A fatal run is logged but does not stop the
// loop: the store may be reachable again by the next tick.
func (s *Scheduler) runOnce() {
	if _, err := s.runner.Run(s.ctx); err != nil {
		s.logger.Error("run aborted", "error", err)
	}
}
