package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	detailSweepJob *DetailSweepJob
}

// NewJobManager creates a job manager wiring the detail sweep to the query
// cache on the given cron schedule.
func NewJobManager(sweeper DetailSweeper, sweepSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		detailSweepJob: NewDetailSweepJob(sweeper, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.detailSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start detail sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.detailSweepJob.Stop()
}
