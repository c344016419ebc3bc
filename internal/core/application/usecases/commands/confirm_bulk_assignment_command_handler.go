package commands

import (
	"context"
	"time"
)

// ConfirmBulkAssignmentCommandHandler records a chef's commitment on a bulk
// order. The aggregate enforces both allocation caps before anything
// changes, and the repository's version check keeps two chefs from
// confirming against the same stale remainder.
type ConfirmBulkAssignmentCommandHandler struct {
	uowFactory BulkOrderUoWFactory
}

// NewConfirmBulkAssignmentCommandHandler creates a handler for assignment
// confirmations.
func NewConfirmBulkAssignmentCommandHandler(uowFactory BulkOrderUoWFactory) ConfirmBulkAssignmentCommandHandler {
	return ConfirmBulkAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmBulkAssignmentCommandHandler) Handle(ctx context.Context, cmd ConfirmBulkAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BulkOrderRepository().Get(ctx, cmd.BulkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmAssignment(cmd.AssignmentID(), cmd.Quantity(), time.Now()); err != nil {
		return err
	}

	if err = uow.BulkOrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
