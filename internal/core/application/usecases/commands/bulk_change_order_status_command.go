package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrBulkChangeOrderStatusCommandIsNotConstructed = errors.New(
	"BulkChangeOrderStatusCommand must be created via NewBulkChangeOrderStatusCommand constructor",
)

// BulkChangeOrderStatusCommand represents an administrative action over a
// selection of orders: apply the same status transition to each of them.
// Every order goes through the full single-order rules; there is no direct
// bulk update path.
type BulkChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	actor    order.Actor
	notes    string

	guard guard.ConstructorGuard
}

// NewBulkChangeOrderStatusCommand creates a command for a bulk transition
// over at least one order.
func NewBulkChangeOrderStatusCommand(
	orderIDs []kernel.UUID,
	target order.Status,
	actor order.Actor,
	notes string,
) (BulkChangeOrderStatusCommand, error) {
	command := BulkChangeOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderIDs(orderIDs),
		command.setTarget(target),
		command.setActor(actor),
	); err != nil {
		return BulkChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the selected orders.
func (c BulkChangeOrderStatusCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

// Target returns the requested status.
func (c BulkChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns who is requesting the transitions.
func (c BulkChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

// Notes returns the free-form note recorded with each transition.
func (c BulkChangeOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *BulkChangeOrderStatusCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}

func (c *BulkChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *BulkChangeOrderStatusCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
