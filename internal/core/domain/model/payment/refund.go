package payment

import (
	"errors"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
)

var ErrRefundIsNotConstructed = errors.New("refund must be created via NewRefund or RestoreRefund")

// RefundStatus represents the lifecycle state of a refund request.
type RefundStatus int

const (
	// RefundStatusUnknown is the zero value. It is not a valid refund status.
	RefundStatusUnknown RefundStatus = iota

	// RefundRequested is the initial status of every refund.
	RefundRequested

	// RefundApproved means an administrator accepted the request.
	RefundApproved

	// RefundProcessed means the money went back to the customer. This is the
	// only refund transition that flips the parent payment to refunded.
	RefundProcessed

	// RefundRejected means an administrator declined the request.
	RefundRejected
)

var refundStatusNames = map[RefundStatus]string{
	RefundRequested: "requested",
	RefundApproved:  "approved",
	RefundProcessed: "processed",
	RefundRejected:  "rejected",
}

var refundStatusSuccessors = map[RefundStatus][]RefundStatus{
	RefundRequested: {RefundApproved, RefundRejected},
	RefundApproved:  {RefundProcessed},
	RefundProcessed: {},
	RefundRejected:  {},
}

// Validate checks that the status is one of the defined refund statuses.
func (s RefundStatus) Validate() error {
	if _, ok := refundStatusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

func (s RefundStatus) String() string {
	if name, ok := refundStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// RefundStatusFromString maps a stored wire name back to a RefundStatus.
func RefundStatusFromString(name string) (RefundStatus, error) {
	for status, statusName := range refundStatusNames {
		if statusName == name {
			return status, nil
		}
	}
	return RefundStatusUnknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether no further transitions are possible.
func (s RefundStatus) IsTerminal() bool {
	return s == RefundProcessed || s == RefundRejected
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s RefundStatus) CanTransitionTo(target RefundStatus) bool {
	for _, successor := range refundStatusSuccessors[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// Refund is a request to return part of a completed payment. Refunds live
// inside their Payment aggregate; the amount checks against the payment
// happen there.
type Refund struct {
	id          kernel.UUID
	amount      kernel.Money
	reason      string
	status      RefundStatus
	requestedAt time.Time
	processedAt *time.Time

	isConstructed bool
}

func newRefund(id kernel.UUID, amount kernel.Money, reason string, now time.Time) (Refund, error) {
	r := Refund{
		status:        RefundRequested,
		requestedAt:   now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setAmount(amount),
		r.setReason(reason),
	); err != nil {
		return Refund{}, err
	}

	return r, nil
}

// RestoreRefund reconstructs a refund from persistence.
func RestoreRefund(
	id kernel.UUID,
	amount kernel.Money,
	reason string,
	status RefundStatus,
	requestedAt time.Time,
	processedAt *time.Time,
) (Refund, error) {
	r := Refund{
		requestedAt:   requestedAt,
		processedAt:   processedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setAmount(amount),
		r.setReason(reason),
		status.Validate(),
	); err != nil {
		return Refund{}, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the Refund instance was properly constructed.
func (r Refund) Validate() error {
	if !r.isConstructed {
		return ErrRefundIsNotConstructed
	}
	return nil
}

// ID returns the refund's unique identifier.
func (r Refund) ID() kernel.UUID {
	return r.id
}

// Amount returns the requested refund amount.
func (r Refund) Amount() kernel.Money {
	return r.amount
}

// Reason returns the customer-supplied reason for the refund.
func (r Refund) Reason() string {
	return r.reason
}

// Status returns the refund's current lifecycle status.
func (r Refund) Status() RefundStatus {
	return r.status
}

// RequestedAt returns when the refund was requested.
func (r Refund) RequestedAt() time.Time {
	return r.requestedAt
}

// ProcessedAt returns when the refund was processed, or nil.
func (r Refund) ProcessedAt() *time.Time {
	return r.processedAt
}

func (r *Refund) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	r.id = id
	return nil
}

func (r *Refund) setAmount(amount kernel.Money) error {
	if amount.IsZero() || amount.IsNegative() {
		return errs.NewInvalidAmountError("amount",
			errors.New("refund amount must be positive"))
	}
	r.amount = amount
	return nil
}

func (r *Refund) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	r.reason = reason
	return nil
}
