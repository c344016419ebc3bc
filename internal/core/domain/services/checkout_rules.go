package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"homechef/internal/pkg/errs"
)

// The checkout rules below run in the order they are wired in
// NewCheckoutGate. Each one reports its own violations and nothing else;
// cross-cutting data (chef snapshot, live prices, computed distance) comes
// pre-assembled on the CheckoutContext.

type cartNotEmptyRule struct{}

func (cartNotEmptyRule) Code() string { return "cart_empty" }

func (r cartNotEmptyRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	if checkout.Cart.IsEmpty() {
		return []errs.ValidationError{errs.NewValidationError(r.Code(), "cart is empty")}
	}
	return nil
}

type singleChefRule struct{}

func (singleChefRule) Code() string { return "mixed_chefs" }

func (r singleChefRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	var violations []errs.ValidationError

	for _, line := range checkout.Cart.Lines() {
		chefID := line.ChefID()
		if point, ok := checkout.Prices[line.PricePointID()]; ok {
			chefID = point.ChefID
		}

		if !chefID.IsEqual(checkout.ChefID) {
			violations = append(violations, errs.NewValidationError(r.Code(),
				fmt.Sprintf("all cart items must be from the same chef: %q is not", line.ItemName())))
		}
	}

	return violations
}

type itemAvailabilityRule struct{}

func (itemAvailabilityRule) Code() string { return "item_unavailable" }

func (r itemAvailabilityRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	var unavailable []string

	for _, line := range checkout.Cart.Lines() {
		point, ok := checkout.Prices[line.PricePointID()]
		if !ok || !point.IsAvailable {
			unavailable = append(unavailable, line.ItemName())
		}
	}

	if len(unavailable) > 0 {
		return []errs.ValidationError{errs.NewValidationError(r.Code(),
			"some items are no longer available: "+strings.Join(unavailable, ", "))}
	}
	return nil
}

type priceDriftRule struct{}

func (priceDriftRule) Code() string { return "price_drift" }

// Check fails on any difference between the price captured at add-to-cart
// time and the current live price. Re-pricing silently would charge the
// customer an amount they never saw.
func (r priceDriftRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	var violations []errs.ValidationError

	for _, line := range checkout.Cart.Lines() {
		point, ok := checkout.Prices[line.PricePointID()]
		if !ok {
			continue // the availability rule already reports missing points
		}

		if !line.UnitPrice().IsEqual(point.Price) {
			violations = append(violations, errs.NewValidationError(r.Code(),
				fmt.Sprintf("price for %q has changed, refresh your cart", line.ItemName())))
		}
	}

	return violations
}

type chefAvailabilityRule struct{}

func (chefAvailabilityRule) Code() string { return "chef_unavailable" }

func (r chefAvailabilityRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	if !checkout.Chef.AcceptingOrders {
		return []errs.ValidationError{errs.NewValidationError(r.Code(),
			"chef is currently not accepting orders")}
	}
	return nil
}

type deliveryRangeRule struct{}

func (deliveryRangeRule) Code() string { return "delivery_range" }

func (r deliveryRangeRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	distance := checkout.Summary.DistanceKm

	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return []errs.ValidationError{errs.NewValidationError(r.Code(),
			"could not determine the delivery distance, verify the addresses")}
	}

	if distance > checkout.config.ServiceRadiusKm {
		return []errs.ValidationError{errs.NewValidationError(r.Code(),
			fmt.Sprintf("delivery distance %.2f km is out of service range (max %.0f km)",
				distance, checkout.config.ServiceRadiusKm))}
	}
	return nil
}

type blockedHoursRule struct{}

func (blockedHoursRule) Code() string { return "blocked_hours" }

func (r blockedHoursRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	hour := checkout.now.Hour()
	from, until := checkout.config.BlockedFromHour, checkout.config.BlockedUntilHour

	blocked := false
	if from > until { // window wraps midnight
		blocked = hour >= from || hour < until
	} else {
		blocked = hour >= from && hour < until
	}

	if blocked {
		return []errs.ValidationError{errs.NewValidationError(r.Code(),
			fmt.Sprintf("orders are not accepted between %02d:00 and %02d:00", from, until))}
	}
	return nil
}

type amountBoundsRule struct{}

func (amountBoundsRule) Code() string { return "amount_bounds" }

func (r amountBoundsRule) Check(_ context.Context, checkout *CheckoutContext) []errs.ValidationError {
	var violations []errs.ValidationError

	if checkout.Summary.Subtotal.LessThan(checkout.config.MinOrderAmount) {
		violations = append(violations, errs.NewValidationError(r.Code(),
			fmt.Sprintf("minimum order amount is %s, current subtotal is %s",
				checkout.config.MinOrderAmount, checkout.Summary.Subtotal)))
	}

	if checkout.Summary.Total.GreaterThan(checkout.config.MaxOrderAmount) {
		violations = append(violations, errs.NewValidationError(r.Code(),
			fmt.Sprintf("maximum order amount is %s, contact support for larger orders",
				checkout.config.MaxOrderAmount)))
	}

	return violations
}
