package commands

import (
	"errors"
	"fmt"
	"strings"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CheckoutRejectedError carries the full, ordered list of checkout rule
// violations. It is returned instead of creating anything; the cart stays
// as it was.
type CheckoutRejectedError struct {
	Violations []errs.ValidationError
}

func (e *CheckoutRejectedError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Error())
	}
	return fmt.Sprintf("checkout rejected: %s", strings.Join(messages, "; "))
}

// PlaceOrderCommand represents a customer's request to turn their cart into
// an order from one chef, delivered to the given coordinates.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	customerID       kernel.UUID
	chefID           kernel.UUID
	deliveryLocation kernel.GeoPoint
	promoCode        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to check out the customer's cart.
// promoCode may be empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	chefID kernel.UUID,
	deliveryLocation kernel.GeoPoint,
	promoCode string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		promoCode: promoCode,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setChefID(chefID),
		command.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer checking out.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ChefID returns the chef the whole cart must belong to.
func (c PlaceOrderCommand) ChefID() kernel.UUID {
	return c.chefID
}

// DeliveryLocation returns where the order goes.
func (c PlaceOrderCommand) DeliveryLocation() kernel.GeoPoint {
	return c.deliveryLocation
}

// PromoCode returns the optional promo code, empty when none was given.
func (c PlaceOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	c.chefID = chefID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.deliveryLocation = location
	return nil
}
