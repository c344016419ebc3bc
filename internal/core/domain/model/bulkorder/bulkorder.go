package bulkorder

import (
	"errors"
	"fmt"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
)

var ErrBulkOrderIsNotConstructed = errors.New("bulk order must be created via NewBulkOrder or RestoreBulkOrder")

// AggregateStatus is the computed view over a bulk order's assignments.
type AggregateStatus struct {
	ConfirmedTotal int
	Remaining      int
	OverCommitted  bool
	Fulfilled      bool
}

// BulkOrder is the aggregate root for a single large event order split
// across multiple chefs. It owns its assignments and guarantees that the
// confirmed quantities never add up to more than the target.
type BulkOrder struct {
	id             kernel.UUID
	number         string
	organizerID    kernel.UUID
	eventName      string
	eventLocation  kernel.GeoPoint
	eventDate      time.Time
	targetQuantity int
	status         Status
	assignments    []Assignment
	orderID        *kernel.UUID
	deadline       time.Time
	createdAt      time.Time
	updatedAt      time.Time

	version int

	isConstructed bool
}

// NewBulkOrder creates a pending bulk order for an event.
func NewBulkOrder(
	id kernel.UUID,
	number string,
	organizerID kernel.UUID,
	eventName string,
	eventLocation kernel.GeoPoint,
	eventDate time.Time,
	targetQuantity int,
	deadline time.Time,
	now time.Time,
) (*BulkOrder, error) {
	b := &BulkOrder{
		status:        Pending,
		eventDate:     eventDate,
		deadline:      deadline,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setOrganizerID(organizerID),
		b.setEventName(eventName),
		b.setEventLocation(eventLocation),
		b.setTargetQuantity(targetQuantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBulkOrder reconstructs a bulk order from persistence.
func RestoreBulkOrder(
	id kernel.UUID,
	number string,
	organizerID kernel.UUID,
	eventName string,
	eventLocation kernel.GeoPoint,
	eventDate time.Time,
	targetQuantity int,
	status Status,
	assignments []Assignment,
	orderID *kernel.UUID,
	deadline time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*BulkOrder, error) {
	b := &BulkOrder{
		eventDate:     eventDate,
		deadline:      deadline,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setOrganizerID(organizerID),
		b.setEventName(eventName),
		b.setEventLocation(eventLocation),
		b.setTargetQuantity(targetQuantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, assignment := range assignments {
		if err := assignment.Validate(); err != nil {
			return nil, err
		}
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
		}
		b.orderID = orderID
	}

	b.status = status
	b.assignments = append(b.assignments, assignments...)
	return b, nil
}

// Validate ensures the BulkOrder instance was properly constructed.
func (b *BulkOrder) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBulkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two bulk orders by their unique identifiers.
func (b *BulkOrder) IsEqual(other *BulkOrder) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bulk order's unique identifier.
func (b *BulkOrder) ID() kernel.UUID {
	return b.id
}

// Number returns the human-facing bulk order number.
func (b *BulkOrder) Number() string {
	return b.number
}

// OrganizerID returns the customer organizing the event.
func (b *BulkOrder) OrganizerID() kernel.UUID {
	return b.organizerID
}

// EventName returns the name of the event being catered.
func (b *BulkOrder) EventName() string {
	return b.eventName
}

// EventLocation returns where the event takes place.
func (b *BulkOrder) EventLocation() kernel.GeoPoint {
	return b.eventLocation
}

// EventDate returns when the event takes place.
func (b *BulkOrder) EventDate() time.Time {
	return b.eventDate
}

// TargetQuantity returns the total quantity the organizer asked for.
func (b *BulkOrder) TargetQuantity() int {
	return b.targetQuantity
}

// Status returns the bulk order's current lifecycle status.
func (b *BulkOrder) Status() Status {
	return b.status
}

// Assignments returns a copy of the bulk order's chef assignments.
func (b *BulkOrder) Assignments() []Assignment {
	return append([]Assignment(nil), b.assignments...)
}

// OrderID returns the consolidated order spawned on fulfilment, or nil.
func (b *BulkOrder) OrderID() *kernel.UUID {
	return b.orderID
}

// Deadline returns the cutoff for confirming the bulk order.
func (b *BulkOrder) Deadline() time.Time {
	return b.deadline
}

// CreatedAt returns when the bulk order was created.
func (b *BulkOrder) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns when the bulk order last changed.
func (b *BulkOrder) UpdatedAt() time.Time {
	return b.updatedAt
}

// Version returns the optimistic-concurrency version loaded from storage.
func (b *BulkOrder) Version() int {
	return b.version
}

// IsExpired reports whether the confirmation deadline has passed.
func (b *BulkOrder) IsExpired(now time.Time) bool {
	return now.After(b.deadline)
}

// Confirm accepts the organizer's request so chefs can start confirming
// their shares.
func (b *BulkOrder) Confirm(now time.Time) error {
	return b.transition(Confirmed, now)
}

// Cancel calls the bulk order off. Used by the organizer and by the deadline
// sweep over expired pending bulk orders.
func (b *BulkOrder) Cancel(now time.Time) error {
	return b.transition(Cancelled, now)
}

// AddAssignment offers a share of the bulk order to a chef. Each chef may
// hold at most one assignment. The assigned quantities themselves are not
// capped; only confirmations are counted against the target.
func (b *BulkOrder) AddAssignment(id kernel.UUID, chefID kernel.UUID, quantity int) (Assignment, error) {
	if b.status.IsTerminal() {
		return Assignment{}, errs.NewTerminalStateError("bulk order", b.status.String())
	}

	for _, existing := range b.assignments {
		if existing.chefID.IsEqual(chefID) {
			return Assignment{}, errs.NewInconsistentStateError("assignment",
				fmt.Errorf("chef %s already holds an assignment on bulk order %s", chefID, b.number))
		}
	}

	assignment, err := newAssignment(id, chefID, quantity)
	if err != nil {
		return Assignment{}, err
	}

	b.assignments = append(b.assignments, assignment)
	return assignment, nil
}

// ConfirmAssignment records a chef's commitment to quantity units. Both caps
// are checked before anything changes: the quantity must fit the chef's
// assigned share, and it must fit what is still open on the bulk order.
// Confirming exactly the remaining quantity succeeds and, once every
// assignment is answered, marks the bulk order fulfilled.
func (b *BulkOrder) ConfirmAssignment(assignmentID kernel.UUID, quantity int, now time.Time) error {
	assignment, err := b.findAssignment(assignmentID)
	if err != nil {
		return err
	}

	// A retry carrying the quantity already on record is a no-op, even when
	// that earlier confirm was the one that fulfilled the bulk order.
	if assignment.status == AssignmentConfirmed && assignment.confirmedQuantity == quantity {
		return nil
	}

	if b.status.IsTerminal() {
		return errs.NewTerminalStateError("bulk order", b.status.String())
	}

	if assignment.status.IsTerminal() {
		return errs.NewTerminalStateError("assignment", assignment.status.String())
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	if quantity > assignment.assignedQuantity {
		return errs.NewOverAllocationError("quantity",
			fmt.Errorf("confirming %d exceeds the assigned %d", quantity, assignment.assignedQuantity))
	}

	aggregate := b.Recompute()
	if quantity > aggregate.Remaining {
		return errs.NewOverAllocationError("quantity",
			fmt.Errorf("confirming %d exceeds the remaining %d on bulk order %s",
				quantity, aggregate.Remaining, b.number))
	}

	assignment.confirmedQuantity = quantity
	assignment.status = AssignmentConfirmed
	b.updatedAt = now

	b.settleFulfilment(now)
	return nil
}

// RejectAssignment records a chef's refusal.
func (b *BulkOrder) RejectAssignment(assignmentID kernel.UUID, now time.Time) error {
	if b.status.IsTerminal() {
		return errs.NewTerminalStateError("bulk order", b.status.String())
	}

	assignment, err := b.findAssignment(assignmentID)
	if err != nil {
		return err
	}

	if assignment.status.IsTerminal() {
		return errs.NewTerminalStateError("assignment", assignment.status.String())
	}

	assignment.status = AssignmentRejected
	b.updatedAt = now

	b.settleFulfilment(now)
	return nil
}

// Recompute sums confirmed quantities across assignments. OverCommitted
// should be unreachable as long as confirmations go through
// ConfirmAssignment; it is reported anyway so corrupt data surfaces instead
// of hiding.
func (b *BulkOrder) Recompute() AggregateStatus {
	confirmedTotal := 0
	allTerminal := true

	for _, assignment := range b.assignments {
		if assignment.status == AssignmentConfirmed {
			confirmedTotal += assignment.confirmedQuantity
		}
		if !assignment.status.IsTerminal() {
			allTerminal = false
		}
	}

	return AggregateStatus{
		ConfirmedTotal: confirmedTotal,
		Remaining:      max(b.targetQuantity-confirmedTotal, 0),
		OverCommitted:  confirmedTotal > b.targetQuantity,
		Fulfilled: confirmedTotal == b.targetQuantity &&
			len(b.assignments) > 0 && allTerminal,
	}
}

// LinkOrder attaches the consolidated order created on fulfilment.
func (b *BulkOrder) LinkOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	if b.orderID != nil {
		return errs.NewInconsistentStateError("bulk order",
			fmt.Errorf("bulk order %s is already linked to an order", b.number))
	}

	b.orderID = &orderID
	return nil
}

func (b *BulkOrder) settleFulfilment(now time.Time) {
	if b.Recompute().Fulfilled {
		b.status = Fulfilled
		b.updatedAt = now
	}
}

func (b *BulkOrder) transition(target Status, now time.Time) error {
	if target == b.status {
		return nil
	}

	if b.status.IsTerminal() {
		return errs.NewTerminalStateError("bulk order", b.status.String())
	}

	if !b.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("bulk order", b.status.String(), target.String())
	}

	b.status = target
	b.updatedAt = now
	return nil
}

func (b *BulkOrder) findAssignment(assignmentID kernel.UUID) (*Assignment, error) {
	for i := range b.assignments {
		if b.assignments[i].id.IsEqual(assignmentID) {
			return &b.assignments[i], nil
		}
	}
	return nil, errs.NewObjectNotFoundError("assignmentID", assignmentID)
}

func (b *BulkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	b.id = id
	return nil
}

func (b *BulkOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	b.number = number
	return nil
}

func (b *BulkOrder) setOrganizerID(organizerID kernel.UUID) error {
	if err := organizerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizerID", err)
	}
	b.organizerID = organizerID
	return nil
}

func (b *BulkOrder) setEventName(eventName string) error {
	if eventName == "" {
		return errs.NewValueIsRequiredError("eventName")
	}
	b.eventName = eventName
	return nil
}

func (b *BulkOrder) setEventLocation(eventLocation kernel.GeoPoint) error {
	if err := eventLocation.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("eventLocation", err)
	}
	b.eventLocation = eventLocation
	return nil
}

func (b *BulkOrder) setTargetQuantity(targetQuantity int) error {
	if targetQuantity <= 0 {
		return errs.NewValueIsInvalidError("targetQuantity")
	}
	b.targetQuantity = targetQuantity
	return nil
}
