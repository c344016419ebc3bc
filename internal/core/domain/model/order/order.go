package order

import (
	"errors"
	"fmt"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when attempting to create an order with
	// an empty item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root of the order lifecycle. It owns the immutable
// item list, the immutable monetary breakdown, and the append-only status
// history; its status field is the authoritative state of the state machine.
//
// Order follows these invariants:
//   - Must have a valid identifier, order number, customer, and at least one item
//   - Charges are computed at checkout and never change afterwards
//   - Status transitions follow the allowed-successor sets of Status
//   - Every successful transition appends exactly one history entry, and no
//     history entry exists without a corresponding status change
//   - Terminal statuses (delivered, cancelled) permit no further transitions
type Order struct {
	id               kernel.UUID
	number           string
	customerID       kernel.UUID
	chefID           *kernel.UUID
	status           Status
	charges          Charges
	deliveryLocation kernel.GeoPoint
	items            []Item
	history          []HistoryEntry
	createdAt        time.Time
	updatedAt        time.Time
	deliveredAt      *time.Time

	// version supports optimistic concurrency in persistence; 0 for a new order.
	version int

	isConstructed bool
}

// NewOrder creates a placed order in Pending status and seeds the history
// with the initial entry. This is the path taken by a successful checkout:
// the chef is known (single-origin cart), the items are copies of the cart
// lines, and the charges come from the checkout summary.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	chefID *kernel.UUID,
	items []Item,
	charges Charges,
	deliveryLocation kernel.GeoPoint,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setChefID(chefID),
		o.setItems(items),
		o.setCharges(charges),
		o.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(Pending, SystemActor(), "order placed", now)
	if err != nil {
		return nil, err
	}
	o.history = append(o.history, entry)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status,
// history trail, and optimistic-concurrency version.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	chefID *kernel.UUID,
	items []Item,
	charges Charges,
	deliveryLocation kernel.GeoPoint,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deliveredAt:   deliveredAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setChefID(chefID),
		o.setItems(items),
		o.setCharges(charges),
		o.setDeliveryLocation(deliveryLocation),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.history = append(o.history, history...)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number, such as "ORD-9F2C41B7".
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ChefID returns the assigned chef's identifier, or nil when no chef is
// assigned yet (consolidated bulk orders before assignment).
func (o *Order) ChefID() *kernel.UUID {
	return o.chefID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Charges returns the immutable monetary breakdown.
func (o *Order) Charges() Charges {
	return o.charges
}

// DeliveryLocation returns the delivery coordinates.
func (o *Order) DeliveryLocation() kernel.GeoPoint {
	return o.deliveryLocation
}

// Items returns a copy of the order's items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// History returns a copy of the append-only status history, oldest first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo advances the order's status.
//
// The checks run in a fixed sequence:
//  1. target equal to the current status is an idempotent no-op; duplicate
//     delivery of the same external event does not fail and appends nothing
//  2. a terminal current status fails with TerminalStateError
//  3. a target outside the allowed-successor set fails with InvalidTransitionError
//  4. an actor without authority for that transition fails with ForbiddenError
//
// On success the status is updated and exactly one history entry is appended;
// the pairing of status change and history row is persisted atomically by the
// repository.
func (o *Order) TransitionTo(target Status, actor Actor, notes string, now time.Time) error {
	if err := errors.Join(actor.Validate(), target.Validate()); err != nil {
		return err
	}

	if target == o.status {
		return nil
	}

	if o.status.IsTerminal() {
		return errs.NewTerminalStateError("order", o.status.String())
	}

	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("order", o.status.String(), target.String())
	}

	if err := o.authorize(actor, target); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(target, actor, notes, now)
	if err != nil {
		return err
	}

	o.status = target
	o.updatedAt = now
	if target == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	o.history = append(o.history, entry)

	return nil
}

// authorize enforces who may drive each transition:
//   - pending -> confirmed: system only (follows checkout gate success)
//   - confirmed -> preparing, preparing -> ready: admin or the assigned chef
//   - ready -> delivered: system, admin, or the delivery agent (the use
//     cases verify the agent holds this order's delivery)
//   - -> cancelled: admin and system from any non-terminal state; the owning
//     customer only while the order is pending or confirmed
func (o *Order) authorize(actor Actor, target Status) error {
	allowed := false

	switch target {
	case Confirmed:
		allowed = actor.Role() == RoleSystem
	case Preparing, Ready:
		allowed = actor.Role() == RoleAdmin ||
			(actor.Role() == RoleChef && o.chefID != nil && actor.isUser(*o.chefID))
	case Delivered:
		allowed = actor.Role() == RoleSystem || actor.Role() == RoleAdmin ||
			actor.Role() == RoleAgent
	case Cancelled:
		allowed = actor.Role() == RoleSystem || actor.Role() == RoleAdmin ||
			(actor.Role() == RoleCustomer && actor.isUser(o.customerID) &&
				(o.status == Pending || o.status == Confirmed))
	case Unknown, InCart, Pending:
		allowed = actor.Role() == RoleSystem
	}

	if !allowed {
		return errs.NewForbiddenError(actor.Role().String(),
			fmt.Sprintf("move order %s to %s", o.number, target))
	}

	return nil
}

// AssignChef sets the chef on an order that has none yet. Used by the bulk
// order flow when a consolidated order gets its chef; regular checkout orders
// carry the chef from construction.
func (o *Order) AssignChef(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	if o.chefID != nil {
		return errs.NewInconsistentStateError("order",
			fmt.Errorf("order %s already has a chef", o.number))
	}

	o.chefID = &chefID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setChefID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.chefID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	o.charges = charges
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}
