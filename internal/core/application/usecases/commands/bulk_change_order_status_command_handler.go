package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
)

// BulkChangeFailure records why one order in a bulk action was left alone.
type BulkChangeFailure struct {
	OrderID kernel.UUID
	Reason  string
}

// BulkChangeReport sums up a bulk action: how many orders transitioned and
// which ones did not, with the reason each was skipped.
type BulkChangeReport struct {
	Succeeded int
	Failures  []BulkChangeFailure
}

// BulkChangeOrderStatusCommandHandler applies one status transition to many
// orders. Each order is its own transaction, so one invalid or contended
// order never blocks the rest; the caller gets a partial-success report
// instead of an all-or-nothing failure.
type BulkChangeOrderStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewBulkChangeOrderStatusCommandHandler creates a handler for bulk order
// transitions.
func NewBulkChangeOrderStatusCommandHandler(uowFactory DeliveryUoWFactory) BulkChangeOrderStatusCommandHandler {
	return BulkChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk transition command. The returned error covers
// the command itself; per-order failures land in the report.
func (h *BulkChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd BulkChangeOrderStatusCommand,
) (BulkChangeReport, error) {
	if err := cmd.Validate(); err != nil {
		return BulkChangeReport{}, err
	}

	report := BulkChangeReport{}
	for _, orderID := range cmd.OrderIDs() {
		if err := h.transitionOne(ctx, orderID, cmd); err != nil {
			report.Failures = append(report.Failures, BulkChangeFailure{
				OrderID: orderID,
				Reason:  err.Error(),
			})
			continue
		}
		report.Succeeded++
	}

	return report, nil
}

func (h *BulkChangeOrderStatusCommandHandler) transitionOne(
	ctx context.Context,
	orderID kernel.UUID,
	cmd BulkChangeOrderStatusCommand,
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

	if err = verifyAgentHoldsDelivery(
		ctx, uow.DeliveryRepository(), cmd.Actor(), cmd.Target(), orderID); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Notes(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
