package order

import (
	"errors"
	"fmt"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a placed order. Items are copied from cart lines at
// checkout and are immutable once the order exists.
type Item struct { //nolint:recvcheck //using for validation
	pricePointID kernel.UUID
	itemName     string
	quantity     int
	unitPrice    kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order item with a positive quantity.
func NewItem(pricePointID kernel.UUID, itemName string, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setPricePointID(pricePointID),
		item.setItemName(itemName),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// PricePointID returns the referenced price point's identifier.
func (i Item) PricePointID() kernel.UUID {
	return i.pricePointID
}

// ItemName returns the display name captured at checkout.
func (i Item) ItemName() string {
	return i.itemName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price the order was placed at.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns unit price times quantity.
func (i Item) Total() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setPricePointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.pricePointID = id
	return nil
}

func (i *Item) setItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.itemName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
