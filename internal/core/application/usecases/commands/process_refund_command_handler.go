package commands

import (
	"context"
	"time"
)

// ProcessRefundCommandHandler finalizes an approved refund. The refundable
// amount is re-checked inside the aggregate and the payment flips to
// refunded in the same transaction as the refund row.
type ProcessRefundCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewProcessRefundCommandHandler creates a handler for refund processing.
func NewProcessRefundCommandHandler(uowFactory PaymentUoWFactory) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund-processing command.
func (h *ProcessRefundCommandHandler) Handle(ctx context.Context, cmd ProcessRefundCommand) error {
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

	aggregate, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.ProcessRefund(cmd.RefundID(), time.Now()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
