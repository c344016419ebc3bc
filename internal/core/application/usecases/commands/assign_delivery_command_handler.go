package commands

import (
	"context"
	"fmt"
	"time"

	"homechef/internal/core/domain/services"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"
)

// AssignDeliveryCommandHandler assigns a delivery to an agent, either the
// one named in the command or the one the dispatcher picks. The agent's
// active-delivery count is checked against the configured cap either way.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	agents     ports.AgentDirectory
	dispatcher services.DeliveryDispatcher
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	agents ports.AgentDirectory,
	dispatcher services.DeliveryDispatcher,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		agents:     agents,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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
	if agentID := cmd.AgentID(); agentID != nil {
		active, err := uow.DeliveryRepository().CountActiveByAgent(ctx, *agentID)
		if err != nil {
			return err
		}
		if !h.dispatcher.CanTake(ports.AgentSnapshot{
			ID: *agentID, IsOnShift: true, ActiveDeliveries: active,
		}) {
			return errs.NewOverAllocationError("agentID",
				fmt.Errorf("agent %s already carries %d active deliveries", agentID, active))
		}

		if err = aggregate.Assign(*agentID, parentOrder.Status(), now); err != nil {
			return err
		}
	} else {
		available, err := h.agents.GetAvailableAgents(ctx)
		if err != nil {
			return err
		}

		if _, err = h.dispatcher.Dispatch(aggregate, parentOrder.Status(), available, now); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
