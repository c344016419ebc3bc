package delivery

import (
	"errors"
	"fmt"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root for getting one order from the chef to the
// customer. Its transitions are checked against the parent order's status:
// a delivery cannot run ahead of the kitchen and cannot move past assigned
// once the order is cancelled.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	agentID *kernel.UUID
	status  Status

	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	version int

	isConstructed bool
}

// NewDelivery creates an unassigned delivery for an order.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        Unassigned,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID *kernel.UUID,
	status Status,
	assignedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:    assignedAt,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAgentID(agentID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// AgentID returns the assigned delivery agent, or nil while unassigned.
func (d *Delivery) AgentID() *kernel.UUID {
	return d.agentID
}

// Status returns the delivery's current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAt returns when an agent was assigned, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the order was picked up, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery last changed.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Version returns the optimistic-concurrency version loaded from storage.
func (d *Delivery) Version() int {
	return d.version
}

// IsActive reports whether the delivery still occupies its agent. Used for
// counting an agent's concurrent workload.
func (d *Delivery) IsActive() bool {
	return d.status == Assigned || d.status == PickedUp
}

// Assign gives the delivery to an agent. The parent order must already be
// confirmed (or further along in the kitchen); assigning a delivery for a
// pending or cancelled order makes no sense.
func (d *Delivery) Assign(agentID kernel.UUID, orderStatus order.Status, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}

	if d.agentID != nil {
		return errs.NewInconsistentStateError("delivery",
			fmt.Errorf("delivery %s already has an agent", d.id))
	}

	if err := d.TransitionTo(Assigned, orderStatus, now); err != nil {
		return err
	}

	d.agentID = &agentID
	return nil
}

// TransitionTo moves the delivery to target. Re-applying the current status
// is a no-op. Besides the delivery's own state machine, target must be
// consistent with the parent order's status.
func (d *Delivery) TransitionTo(target Status, orderStatus order.Status, now time.Time) error {
	if err := errors.Join(target.Validate(), orderStatus.Validate()); err != nil {
		return err
	}

	if target == d.status {
		return nil
	}

	if d.status.IsTerminal() {
		return errs.NewTerminalStateError("delivery", d.status.String())
	}

	if !d.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), target.String())
	}

	if err := d.checkOrderConsistency(target, orderStatus); err != nil {
		return err
	}

	d.status = target
	d.updatedAt = now

	switch target {
	case Assigned:
		d.assignedAt = &now
	case PickedUp:
		d.pickedUpAt = &now
	case Delivered:
		d.deliveredAt = &now
	}

	return nil
}

// checkOrderConsistency rejects delivery transitions that would run ahead of
// the order. Cancelling the delivery itself is always consistent.
func (d *Delivery) checkOrderConsistency(target Status, orderStatus order.Status) error {
	allowed := true

	switch target {
	case Assigned:
		allowed = orderStatus == order.Confirmed ||
			orderStatus == order.Preparing || orderStatus == order.Ready
	case PickedUp:
		allowed = orderStatus == order.Preparing || orderStatus == order.Ready
	case Delivered:
		allowed = orderStatus == order.Ready || orderStatus == order.Delivered
	}

	if !allowed {
		return errs.NewInconsistentStateError("delivery",
			fmt.Errorf("delivery for order %s cannot become %s while the order is %s",
				d.orderID, target, orderStatus))
	}

	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	d.agentID = agentID
	return nil
}
