package commands

import (
	"context"
	"time"
)

// RejectBulkAssignmentCommandHandler records a chef declining their bulk
// order assignment. A rejection may settle the bulk order as fulfilled when
// every other assignment has already confirmed the full target.
type RejectBulkAssignmentCommandHandler struct {
	uowFactory BulkOrderUoWFactory
}

// NewRejectBulkAssignmentCommandHandler creates a handler for assignment
// rejections.
func NewRejectBulkAssignmentCommandHandler(uowFactory BulkOrderUoWFactory) RejectBulkAssignmentCommandHandler {
	return RejectBulkAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectBulkAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectBulkAssignmentCommand) error {
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

	if err = aggregate.RejectAssignment(cmd.AssignmentID(), time.Now()); err != nil {
		return err
	}

	if err = uow.BulkOrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
