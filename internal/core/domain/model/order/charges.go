package order

import (
	"errors"
	"fmt"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

// ErrChargesAreNotConstructed is returned when Charges were not created via
// NewCharges.
var ErrChargesAreNotConstructed = errors.New("Charges must be created via NewCharges constructor")

// Charges is the monetary breakdown of an order. It is computed by the
// checkout gate from stored prices, never taken from client input, and is
// immutable for the life of the order; money only leaves it again through an
// explicit refund.
//
// Invariant: total = subtotal + delivery fee + tax - discount, every
// component non-negative, total non-negative.
type Charges struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	tax         kernel.Money
	discount    kernel.Money
	total       kernel.Money

	guard guard.ConstructorGuard
}

// NewCharges computes the total from its components and validates the
// breakdown. The total is always derived here; callers cannot supply one.
func NewCharges(subtotal, deliveryFee, tax, discount kernel.Money) (Charges, error) {
	total := subtotal.Add(deliveryFee).Add(tax).Sub(discount)
	if total.IsNegative() {
		return Charges{}, errs.NewInvalidAmountError("total",
			fmt.Errorf("discount %s exceeds charges", discount))
	}

	return Charges{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		tax:         tax,
		discount:    discount,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the charges were created through the constructor.
func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}

// Subtotal returns the sum of item totals.
func (c Charges) Subtotal() kernel.Money {
	return c.subtotal
}

// DeliveryFee returns the delivery fee.
func (c Charges) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Tax returns the tax amount.
func (c Charges) Tax() kernel.Money {
	return c.tax
}

// Discount returns the discount amount.
func (c Charges) Discount() kernel.Money {
	return c.discount
}

// Total returns subtotal + delivery fee + tax - discount.
func (c Charges) Total() kernel.Money {
	return c.total
}
