package jobs

import (
	"context"
	"log/slog"

	"homechef/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BulkOrderDeadlineJob periodically cancels pending bulk orders whose
// confirmation deadline has passed without the chefs covering the target.
type BulkOrderDeadlineJob struct {
	handler  commands.CancelExpiredBulkOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBulkOrderDeadlineJob creates the deadline job. The schedule is a
// six-field cron expression with seconds.
func NewBulkOrderDeadlineJob(
	handler commands.CancelExpiredBulkOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BulkOrderDeadlineJob {
	return &BulkOrderDeadlineJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "bulk_order_deadline_job"),
	}
}

// Start schedules the deadline check.
func (j *BulkOrderDeadlineJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelExpiredBulkOrdersCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Bulk order deadline job misconfigured", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Bulk order deadline job failed", "error", err)
			return
		}

		if report.Cancelled > 0 || len(report.Failures) > 0 {
			j.logger.InfoContext(ctx, "Bulk order deadline sweep completed",
				"cancelled", report.Cancelled, "failures", len(report.Failures))
		}
		for _, failure := range report.Failures {
			j.logger.WarnContext(ctx, "Expired bulk order could not be cancelled",
				"bulk_order_id", failure.ID.String(), "reason", failure.Reason)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bulk order deadline job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the deadline job.
func (j *BulkOrderDeadlineJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Bulk order deadline job stopped")
}
