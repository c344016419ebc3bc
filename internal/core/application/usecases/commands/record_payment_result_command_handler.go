package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/model/payment"
)

// RecordPaymentResultCommandHandler applies a provider callback to the
// order's payment and drives the order accordingly: a completed charge
// confirms the order, a failed one cancels it. A redelivered event finds
// both aggregates already in the reported state and changes nothing.
type RecordPaymentResultCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRecordPaymentResultCommandHandler creates a handler for payment
// provider callbacks.
func NewRecordPaymentResultCommandHandler(uowFactory PaymentUoWFactory) RecordPaymentResultCommandHandler {
	return RecordPaymentResultCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the callback command.
func (h *RecordPaymentResultCommandHandler) Handle(ctx context.Context, cmd RecordPaymentResultCommand) error {
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

	aggregate, err := uow.PaymentRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	parentOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.Apply(cmd.Outcome(), now); err != nil {
		return err
	}

	switch cmd.Outcome() {
	case payment.Completed:
		err = parentOrder.TransitionTo(order.Confirmed, order.SystemActor(), "payment completed", now)
	case payment.Failed:
		err = parentOrder.TransitionTo(order.Cancelled, order.SystemActor(), "payment failed", now)
	}
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, parentOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
