package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand represents a customer's request to get part of a
// completed payment back.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	refundID  kernel.UUID
	paymentID kernel.UUID
	amount    kernel.Money
	reason    string

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to request a refund.
func NewRequestRefundCommand(
	refundID kernel.UUID,
	paymentID kernel.UUID,
	amount kernel.Money,
	reason string,
) (RequestRefundCommand, error) {
	command := RequestRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRefundID(refundID),
		command.setPaymentID(paymentID),
		command.setAmount(amount),
		command.setReason(reason),
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// RefundID returns the identifier the new refund will carry.
func (c RequestRefundCommand) RefundID() kernel.UUID {
	return c.refundID
}

// PaymentID returns the payment being refunded against.
func (c RequestRefundCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Amount returns the requested refund amount.
func (c RequestRefundCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the customer's reason for the refund.
func (c RequestRefundCommand) Reason() string {
	return c.reason
}

func (c *RequestRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}
	c.refundID = refundID
	return nil
}

func (c *RequestRefundCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *RequestRefundCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() || amount.IsNegative() {
		return errs.NewInvalidAmountError("amount",
			errors.New("refund amount must be positive"))
	}
	c.amount = amount
	return nil
}

func (c *RequestRefundCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
