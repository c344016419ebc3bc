package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
)

// CancelStalePendingOrdersCommandHandler cancels orders that never received
// a payment result and aged past the pending threshold. Each order goes
// through the regular transition rules under the system actor, one
// transaction per order.
type CancelStalePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStalePendingOrdersCommandHandler creates a handler for the stale
// order sweep.
func NewCancelStalePendingOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStalePendingOrdersCommandHandler {
	return CancelStalePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. The returned error covers the command
// and the listing query; per-order failures land in the report.
func (h *CancelStalePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStalePendingOrdersCommand,
) (SweepReport, error) {
	if err := cmd.Validate(); err != nil {
		return SweepReport{}, err
	}

	now := time.Now()
	cutoff := now.Add(-cmd.MaxAge())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SweepReport{}, err
	}
	stale, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	_ = uow.Rollback(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{}
	for _, aggregate := range stale {
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

func (h *CancelStalePendingOrdersCommandHandler) cancelOne(
	ctx context.Context,
	orderID kernel.UUID,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.Cancelled, order.SystemActor(), "stale pending order", now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
