package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/payment"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrRecordPaymentResultCommandIsNotConstructed = errors.New(
	"RecordPaymentResultCommand must be created via NewRecordPaymentResultCommand constructor",
)

// RecordPaymentResultCommand represents a payment provider callback: the
// charge for an order either completed or failed. Providers redeliver
// events, so handling the same outcome twice must change nothing.
type RecordPaymentResultCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome payment.Status

	guard guard.ConstructorGuard
}

// NewRecordPaymentResultCommand creates a command for a provider callback.
// outcome must be completed or failed; the other statuses are not provider
// events.
func NewRecordPaymentResultCommand(
	orderID kernel.UUID,
	outcome payment.Status,
) (RecordPaymentResultCommand, error) {
	command := RecordPaymentResultCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOutcome(outcome),
	); err != nil {
		return RecordPaymentResultCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentResultCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentResultCommandIsNotConstructed)
}

// OrderID returns the order whose payment was settled.
func (c RecordPaymentResultCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the provider-reported payment status.
func (c RecordPaymentResultCommand) Outcome() payment.Status {
	return c.outcome
}

func (c *RecordPaymentResultCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentResultCommand) setOutcome(outcome payment.Status) error {
	if outcome != payment.Completed && outcome != payment.Failed {
		return errs.NewValueIsInvalidError("outcome")
	}
	c.outcome = outcome
	return nil
}
