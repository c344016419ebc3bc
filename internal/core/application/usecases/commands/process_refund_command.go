package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/guard"
)

var ErrProcessRefundCommandIsNotConstructed = errors.New(
	"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
)

// ProcessRefundCommand represents the final step of a refund: the money
// goes back to the customer and the payment becomes refunded.
type ProcessRefundCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	refundID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a command to process an approved refund.
func NewProcessRefundCommand(paymentID kernel.UUID, refundID kernel.UUID) (ProcessRefundCommand, error) {
	command := ProcessRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setRefundID(refundID),
	); err != nil {
		return ProcessRefundCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// PaymentID returns the payment owning the refund.
func (c ProcessRefundCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// RefundID returns the refund being processed.
func (c ProcessRefundCommand) RefundID() kernel.UUID {
	return c.refundID
}

func (c *ProcessRefundCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *ProcessRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}
	c.refundID = refundID
	return nil
}
