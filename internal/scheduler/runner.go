// Package scheduler drives scheduled publishing and expiry on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/content_platform_app/internal/core/ports/services"
	"github.com/SscSPs/content_platform_app/internal/dto"
)

// Runner executes due schedules and archives expired articles.
type Runner struct {
	svc       portssvc.ScheduleRunnerSvc
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

type Option func(*Runner)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

func NewRunner(svc portssvc.ScheduleRunnerSvc, interval time.Duration, batchSize int, opts ...Option) *Runner {
	r := &Runner{
		svc:       svc,
		interval:  interval,
		batchSize: batchSize,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start runs one pass immediately and then one per interval until ctx is
// cancelled. Blocking call.
func (r *Runner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	r.logger.Info("Scheduler started", slog.Duration("interval", r.interval), slog.Int("batch_size", r.batchSize))

	r.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	report, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.Error("Scheduler pass failed", slog.String("error", err.Error()))
	}
	if report.Published+report.Failed+report.Archived > 0 {
		r.logger.Info("Scheduler pass finished",
			slog.Int("published", report.Published),
			slog.Int("failed", report.Failed),
			slog.Int("archived", report.Archived))
	}
}

// RunOnce executes due schedules and then archives expired articles. An
// error in one step does not skip the other.
func (r *Runner) RunOnce(ctx context.Context) (dto.ScheduleRunReport, error) {
	now := r.now().UTC()
	report, execErr := r.svc.ExecuteDueSchedules(ctx, now, r.batchSize)
	archived, archiveErr := r.svc.ArchiveExpiredArticles(ctx, now, r.batchSize)
	report.Archived = archived
	return report, errors.Join(execErr, archiveErr)
}
