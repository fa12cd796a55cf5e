package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DetailSweeper evicts unreferenced detail entries. Satisfied by
// querycache.Cache.
type DetailSweeper interface {
	SweepDetails() int
}

// DetailSweepJob manages the scheduled eviction of order detail entries no
// consumer holds anymore. Collection entries are never swept; their lifecycle
// is invalidation-driven only.
type DetailSweepJob struct {
	sweeper  DetailSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDetailSweepJob creates a sweep job running on the given cron schedule.
func NewDetailSweepJob(sweeper DetailSweeper, schedule string, logger *slog.Logger) *DetailSweepJob {
	return &DetailSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "detail_sweep_job"),
	}
}

// Start begins the sweep job on its configured schedule.
func (j *DetailSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if evicted := j.sweeper.SweepDetails(); evicted > 0 {
			j.logger.InfoContext(ctx, "Detail sweep evicted entries", "count", evicted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Detail sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *DetailSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Detail sweep job stopped")
}
