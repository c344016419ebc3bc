package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a single order status transition
// as one atomic unit: read, validate, write status plus history row. The
// repository's version check turns a concurrent interleaving into a
// conflict error, and re-running the same transition afterwards is a
// harmless no-op.
type ChangeOrderStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory DeliveryUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = verifyAgentHoldsDelivery(
		ctx, uow.DeliveryRepository(), cmd.Actor(), cmd.Target(), cmd.OrderID()); err != nil {
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

// verifyAgentHoldsDelivery rejects an agent completing an order whose
// delivery is assigned to somebody else. Other actors and other targets pass
// through untouched; the aggregate's own authority check covers them.
func verifyAgentHoldsDelivery(
	ctx context.Context,
	deliveries ports.DeliveryRepository,
	actor order.Actor,
	target order.Status,
	orderID kernel.UUID,
) error {
	if actor.Role() != order.RoleAgent || target != order.Delivered {
		return nil
	}

	leg, err := deliveries.GetByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	agentID := leg.AgentID()
	if agentID == nil || actor.UserID() == nil || !agentID.IsEqual(*actor.UserID()) {
		return errs.NewForbiddenError(order.RoleAgent.String(), "complete another agent's delivery")
	}

	return nil
}
