package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic refresh cycles over all tracked products.
type Scheduler struct {
	cron       *cron.Cron
	engine     *Engine
	jobTimeout time.Duration
	log        *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes tracked products on the
// given interval. Each run is bounded by jobTimeout; on expiry the run
// keeps whatever it persisted and reports a partial summary.
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	jobTimeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:       c,
		engine:     eng,
		jobTimeout: jobTimeout,
		log:        log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runRefresh,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	s.log.Info("scheduled refresh starting")
	if err := s.engine.RunScheduledRefresh(ctx); err != nil {
		s.log.Error("scheduled refresh failed", "error", err)
	}
}
