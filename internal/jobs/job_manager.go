// Package jobs provides the scheduled background tasks of the marketplace,
// built on github.com/robfig/cron/v3.
//
// Two sweeps run on their configured schedules:
//
//  1. StaleOrderSweepJob cancels pending orders whose payment never settled.
//  2. BulkOrderDeadlineJob cancels pending bulk orders past their
//     confirmation deadline.
//
// Both sweeps tolerate per-aggregate failures: one order that cannot be
// cancelled is reported and skipped, the rest of the batch proceeds.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"homechef/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderSweepJob   *StaleOrderSweepJob
	bulkOrderDeadlineJob *BulkOrderDeadlineJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// command handlers.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStalePendingOrdersCommandHandler,
	cancelExpiredBulkOrdersHandler commands.CancelExpiredBulkOrdersCommandHandler,
	staleOrderMaxAge time.Duration,
	staleOrderSchedule string,
	bulkOrderSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderSweepJob: NewStaleOrderSweepJob(
			cancelStaleOrdersHandler, staleOrderMaxAge, staleOrderSchedule, logger),
		bulkOrderDeadlineJob: NewBulkOrderDeadlineJob(
			cancelExpiredBulkOrdersHandler, bulkOrderSchedule, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails to
// start, stopping the ones already running.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}

	if err := jm.bulkOrderDeadlineJob.Start(); err != nil {
		jm.staleOrderSweepJob.Stop()
		return fmt.Errorf("failed to start bulk order deadline job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.bulkOrderDeadlineJob.Stop()
	jm.staleOrderSweepJob.Stop()
}
