package jobs

import (
	"context"
	"log/slog"
	"time"

	"homechef/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob periodically cancels pending orders whose payment never
// settled. Each run cancels every pending order older than maxAge.
type StaleOrderSweepJob struct {
	handler  commands.CancelStalePendingOrdersCommandHandler
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderSweepJob creates the sweep job. The schedule is a six-field
// cron expression with seconds.
func NewStaleOrderSweepJob(
	handler commands.CancelStalePendingOrdersCommandHandler,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStalePendingOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
			return
		}

		if report.Cancelled > 0 || len(report.Failures) > 0 {
			j.logger.InfoContext(ctx, "Stale order sweep completed",
				"cancelled", report.Cancelled, "failures", len(report.Failures))
		}
		for _, failure := range report.Failures {
			j.logger.WarnContext(ctx, "Stale order could not be cancelled",
				"order_id", failure.ID.String(), "reason", failure.Reason)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}
