package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
)

// SweepFailure records why one aggregate in a scheduled sweep was left alone.
type SweepFailure struct {
	ID     kernel.UUID
	Reason string
}

// SweepReport sums up a scheduled sweep: how many aggregates were cancelled
// and which ones were skipped, with the reason for each.
type SweepReport struct {
	Cancelled int
	Failures  []SweepFailure
}

// CancelExpiredBulkOrdersCommandHandler cancels bulk orders that sat past
// their confirmation deadline without being confirmed. Each bulk order is
// cancelled in its own transaction so one contended row never stalls the
// whole sweep.
type CancelExpiredBulkOrdersCommandHandler struct {
	uowFactory BulkOrderUoWFactory
}

// NewCancelExpiredBulkOrdersCommandHandler creates a handler for the bulk
// order deadline sweep.
func NewCancelExpiredBulkOrdersCommandHandler(uowFactory BulkOrderUoWFactory) CancelExpiredBulkOrdersCommandHandler {
	return CancelExpiredBulkOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. The returned error covers the command
// and the listing query; per-aggregate failures land in the report.
func (h *CancelExpiredBulkOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelExpiredBulkOrdersCommand,
) (SweepReport, error) {
	if err := cmd.Validate(); err != nil {
		return SweepReport{}, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SweepReport{}, err
	}
	expired, err := uow.BulkOrderRepository().GetAllPendingExpired(ctx, now)
	_ = uow.Rollback(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{}
	for _, aggregate := range expired {
		if err := h.cancelOne(ctx, aggregate.ID(), now); err != nil {
			report.Failures = append(report.Failures, SweepFailure{
				ID:     aggregate.ID(),
				Reason: err.Error(),
			})
			continue
		}
		report.Cancelled++
	}

	return report, nil
}

func (h *CancelExpiredBulkOrdersCommandHandler) cancelOne(
	ctx context.Context,
	bulkOrderID kernel.UUID,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BulkOrderRepository().Get(ctx, bulkOrderID)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(now); err != nil {
		return err
	}

	if err = uow.BulkOrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
