package payment

import (
	"errors"
	"fmt"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("payment must be created via NewPayment or RestorePayment")

// Payment is the aggregate root for the money side of a single order. It
// owns its refunds and guarantees that the sum of processed refunds never
// exceeds the amount originally paid.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	method    Method
	status    Status
	refunds   []Refund
	createdAt time.Time
	updatedAt time.Time

	version int

	isConstructed bool
}

// NewPayment creates a pending payment for an order.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence, including its
// refunds and optimistic-concurrency version.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	refunds []Refund,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Payment, error) {
	p := &Payment{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, refund := range refunds {
		if err := refund.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.refunds = append(p.refunds, refunds...)
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the amount originally charged.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns how the customer pays.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the payment's current lifecycle status.
func (p *Payment) Status() Status {
	return p.status
}

// Refunds returns a copy of the payment's refunds.
func (p *Payment) Refunds() []Refund {
	return append([]Refund(nil), p.refunds...)
}

// CreatedAt returns when the payment was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the payment last changed.
func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// Version returns the optimistic-concurrency version loaded from storage.
func (p *Payment) Version() int {
	return p.version
}

// Apply moves the payment to target in response to a provider event.
// Applying the current status again is a no-op, so a duplicate webhook
// delivery is harmless. The refunded status cannot be applied here; it is
// reachable only through ProcessRefund.
func (p *Payment) Apply(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == p.status {
		return nil
	}

	if p.status.IsTerminal() {
		return errs.NewTerminalStateError("payment", p.status.String())
	}

	if target == Refunded {
		return errs.NewForbiddenError("caller", "set payment refunded directly")
	}

	if !p.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("payment", p.status.String(), target.String())
	}

	p.status = target
	p.updatedAt = now
	return nil
}

// RequestRefund registers a refund request against a completed payment. The
// amount must not exceed what is still refundable: the original amount minus
// the sum of already processed refunds.
func (p *Payment) RequestRefund(
	id kernel.UUID,
	amount kernel.Money,
	reason string,
	now time.Time,
) (Refund, error) {
	if p.status != Completed && p.status != Refunded {
		return Refund{}, errs.NewInvalidTransitionError("refund",
			p.status.String(), RefundRequested.String())
	}

	refund, err := newRefund(id, amount, reason, now)
	if err != nil {
		return Refund{}, err
	}

	if err := p.checkRefundable(amount); err != nil {
		return Refund{}, err
	}

	p.refunds = append(p.refunds, refund)
	p.updatedAt = now
	return refund, nil
}

// ReviewRefund approves or rejects a requested refund.
func (p *Payment) ReviewRefund(refundID kernel.UUID, approve bool, now time.Time) error {
	refund, err := p.findRefund(refundID)
	if err != nil {
		return err
	}

	target := RefundApproved
	if !approve {
		target = RefundRejected
	}

	return p.transitionRefund(refund, target, now)
}

// ProcessRefund finalizes an approved refund. The refundable-amount check
// runs again here: requests are validated against the state at request time,
// and a competing refund may have been processed since. On success the
// payment itself becomes refunded.
func (p *Payment) ProcessRefund(refundID kernel.UUID, now time.Time) error {
	refund, err := p.findRefund(refundID)
	if err != nil {
		return err
	}

	// A retry of an already-processed refund is a no-op, nothing is
	// re-applied and no timestamp moves.
	if refund.status == RefundProcessed {
		return nil
	}

	if err := p.checkRefundable(refund.amount); err != nil {
		return err
	}

	if err := p.transitionRefund(refund, RefundProcessed, now); err != nil {
		return err
	}

	refund.processedAt = &now
	p.status = Refunded
	p.updatedAt = now
	return nil
}

// ProcessedRefundTotal returns the sum of all processed refund amounts.
func (p *Payment) ProcessedRefundTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, refund := range p.refunds {
		if refund.status == RefundProcessed {
			total = total.Add(refund.amount)
		}
	}
	return total
}

// checkRefundable fails when amount exceeds the part of the payment that has
// not been refunded yet.
func (p *Payment) checkRefundable(amount kernel.Money) error {
	remaining := p.amount.Sub(p.ProcessedRefundTotal())
	if amount.GreaterThan(remaining) {
		return errs.NewInvalidAmountError("amount",
			fmt.Errorf("refund of %s exceeds refundable %s on payment %s",
				amount, remaining, p.id))
	}
	return nil
}

func (p *Payment) findRefund(refundID kernel.UUID) (*Refund, error) {
	for i := range p.refunds {
		if p.refunds[i].id.IsEqual(refundID) {
			return &p.refunds[i], nil
		}
	}
	return nil, errs.NewObjectNotFoundError("refundID", refundID)
}

func (p *Payment) transitionRefund(refund *Refund, target RefundStatus, now time.Time) error {
	if target == refund.status {
		return nil
	}

	if refund.status.IsTerminal() {
		return errs.NewTerminalStateError("refund", refund.status.String())
	}

	if !refund.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("refund",
			refund.status.String(), target.String())
	}

	refund.status = target
	p.updatedAt = now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if amount.IsZero() || amount.IsNegative() {
		return errs.NewInvalidAmountError("amount",
			errors.New("payment amount must be positive"))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
