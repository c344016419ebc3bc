package commands

import (
	"errors"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/guard"
)

var ErrReviewRefundCommandIsNotConstructed = errors.New(
	"ReviewRefundCommand must be created via NewReviewRefundCommand constructor",
)

// ReviewRefundCommand represents an administrator approving or rejecting a
// requested refund.
type ReviewRefundCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	refundID  kernel.UUID
	approve   bool

	guard guard.ConstructorGuard
}

// NewReviewRefundCommand creates a command to review a refund request.
func NewReviewRefundCommand(
	paymentID kernel.UUID,
	refundID kernel.UUID,
	approve bool,
) (ReviewRefundCommand, error) {
	command := ReviewRefundCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setRefundID(refundID),
	); err != nil {
		return ReviewRefundCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRefundCommand) Validate() error {
	return c.guard.Validate(ErrReviewRefundCommandIsNotConstructed)
}

// PaymentID returns the payment owning the refund.
func (c ReviewRefundCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// RefundID returns the refund under review.
func (c ReviewRefundCommand) RefundID() kernel.UUID {
	return c.refundID
}

// Approve reports whether the refund is being approved or rejected.
func (c ReviewRefundCommand) Approve() bool {
	return c.approve
}

func (c *ReviewRefundCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *ReviewRefundCommand) setRefundID(refundID kernel.UUID) error {
	if err := refundID.Validate(); err != nil {
		return err
	}
	c.refundID = refundID
	return nil
}
