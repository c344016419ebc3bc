package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/bulkorder"
)

// CreateBulkOrderCommandHandler registers a new bulk order with its initial
// chef assignments.
type CreateBulkOrderCommandHandler struct {
	uowFactory BulkOrderUoWFactory
}

// NewCreateBulkOrderCommandHandler creates a handler for bulk order
// creation.
func NewCreateBulkOrderCommandHandler(uowFactory BulkOrderUoWFactory) CreateBulkOrderCommandHandler {
	return CreateBulkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command.
func (h *CreateBulkOrderCommandHandler) Handle(ctx context.Context, cmd CreateBulkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := bulkorder.NewBulkOrder(
		cmd.BulkOrderID(), bulkorder.NewNumber(), cmd.OrganizerID(),
		cmd.EventName(), cmd.EventLocation(), cmd.EventDate(),
		cmd.TargetQuantity(), cmd.Deadline(), time.Now())
	if err != nil {
		return err
	}

	for _, request := range cmd.Assignments() {
		if _, err = aggregate.AddAssignment(request.AssignmentID, request.ChefID, request.Quantity); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BulkOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
