package cart

import (
	"errors"
	"fmt"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrLineIsNotConstructed is returned when a Line was not created through
	// the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one (price point, quantity) entry in a customer's pre-checkout
// basket. The unit price is captured at add-time; the checkout gate compares
// it against the live price to detect drift, it is never silently re-priced.
type Line struct { //nolint:recvcheck //using for validation
	pricePointID kernel.UUID
	chefID       kernel.UUID
	itemName     string
	quantity     int
	unitPrice    kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a cart line for a price point sold by a chef.
// Quantity must be positive and the item name non-empty.
func NewLine(
	pricePointID kernel.UUID,
	chefID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setPricePointID(pricePointID),
		line.setChefID(chefID),
		line.setItemName(itemName),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// PricePointID returns the referenced price point's identifier.
func (l Line) PricePointID() kernel.UUID {
	return l.pricePointID
}

// ChefID returns the identifier of the chef selling the price point.
func (l Line) ChefID() kernel.UUID {
	return l.chefID
}

// ItemName returns the display name captured when the item was added.
func (l Line) ItemName() string {
	return l.itemName
}

// Quantity returns the number of units in the line.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price captured when the item was added.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns the line total (captured unit price times quantity).
func (l Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setPricePointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.pricePointID = id
	return nil
}

func (l *Line) setChefID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.chefID = id
	return nil
}

func (l *Line) setItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	l.itemName = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

// Cart is the aggregate root for a customer's pre-checkout basket.
// It owns an ordered collection of lines; the order of lines is the order in
// which they were first added. A cart is cleared only by a successful
// checkout commit, never by the checkout gate itself.
//
// Invariants:
//   - Must have a valid unique identifier and owning customer
//   - Lines are merged by price point: adding the same price point again
//     increases the quantity and keeps the originally captured unit price
//   - Can only be created through NewCart constructor
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []Line

	isConstructed bool
}

// NewCart creates an empty cart for a customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	c := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setCustomerID(customerID)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart from persistence.
// Every line must have been created through NewLine.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	c.lines = append(c.lines, lines...)
	return c, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart lines in add order.
// The returned slice is a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine adds a line to the cart. If a line for the same price point already
// exists, its quantity is increased and the originally captured unit price is
// kept.
func (c *Cart) AddLine(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.pricePointID.IsEqual(line.pricePointID) {
			c.lines[i].quantity += line.quantity
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine removes the line referencing the given price point.
// Returns ObjectNotFoundError if no such line exists.
func (c *Cart) RemoveLine(pricePointID kernel.UUID) error {
	if err := pricePointID.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.pricePointID.IsEqual(pricePointID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cart line", pricePointID.String())
}

// Subtotal returns the sum of all line totals at captured prices.
func (c *Cart) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// Clear removes every line. Called by the checkout use case inside the same
// transaction that creates the order, so a cart is observably emptied before
// the per-customer cart lock releases.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
