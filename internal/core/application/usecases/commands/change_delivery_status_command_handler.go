package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/order"
)

// ChangeDeliveryStatusCommandHandler applies a delivery status transition.
// Completing a delivery also moves the parent order to delivered, in the
// same transaction.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewChangeDeliveryStatusCommandHandler creates a handler for delivery
// status transitions.
func NewChangeDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	parentOrder, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.TransitionTo(cmd.Target(), parentOrder.Status(), now); err != nil {
		return err
	}

	if cmd.Target() == delivery.Delivered {
		agent := order.SystemActor()
		if agentID := aggregate.AgentID(); agentID != nil {
			if agentActor, err := order.AgentActor(*agentID); err == nil {
				agent = agentActor
			}
		}

		if err = parentOrder.TransitionTo(order.Delivered, agent, "delivery completed", now); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, parentOrder); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
