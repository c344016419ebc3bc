package commands

import (
	"context"
	"time"
)

// RequestRefundCommandHandler registers a refund request against a
// payment. The payment aggregate rejects requests exceeding what is still
// refundable.
type RequestRefundCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRequestRefundCommandHandler creates a handler for refund requests.
func NewRequestRefundCommandHandler(uowFactory PaymentUoWFactory) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund request command.
func (h *RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
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

	_, err = aggregate.RequestRefund(cmd.RefundID(), cmd.Amount(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
