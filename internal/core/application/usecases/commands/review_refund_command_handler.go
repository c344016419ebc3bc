package commands

import (
	"context"
	"time"
)

// ReviewRefundCommandHandler applies an administrator's verdict on a
// requested refund.
type ReviewRefundCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewReviewRefundCommandHandler creates a handler for refund reviews.
func NewReviewRefundCommandHandler(uowFactory PaymentUoWFactory) ReviewRefundCommandHandler {
	return ReviewRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *ReviewRefundCommandHandler) Handle(ctx context.Context, cmd ReviewRefundCommand) error {
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

	if err = aggregate.ReviewRefund(cmd.RefundID(), cmd.Approve(), time.Now()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
