package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"
)

// CheckoutConfig carries the business constants the checkout rules run
// against. Defaults match the marketplace's service terms; tests inject
// their own values.
type CheckoutConfig struct {
	// ServiceRadiusKm is the maximum chef-to-customer distance.
	ServiceRadiusKm float64

	// MinOrderAmount is the smallest accepted cart subtotal.
	MinOrderAmount kernel.Money

	// MaxOrderAmount is the largest accepted order total.
	MaxOrderAmount kernel.Money

	// DeliveryFee is the flat fee added to every order.
	DeliveryFee kernel.Money

	// TaxRate is applied to the subtotal, e.g. 0.08 for 8%.
	TaxRate decimal.Decimal

	// BlockedFromHour and BlockedUntilHour bound the nightly window during
	// which no orders are taken. The window wraps midnight: an order at
	// 23:30 or 05:59 is blocked, one at 06:00 goes through.
	BlockedFromHour  int
	BlockedUntilHour int
}

// DefaultCheckoutConfig returns the production checkout constants: 50 km
// service radius, 250–50000 amount bounds, and a 23:00–06:00 blackout.
func DefaultCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		ServiceRadiusKm:  50,
		MinOrderAmount:   fixedMoney(250),
		MaxOrderAmount:   fixedMoney(50000),
		DeliveryFee:      fixedMoney(50),
		TaxRate:          decimal.Zero,
		BlockedFromHour:  23,
		BlockedUntilHour: 6,
	}
}

// fixedMoney builds a Money from a non-negative constant.
func fixedMoney(v float64) kernel.Money {
	m, _ := kernel.NewMoneyFromFloat(v)
	return m
}

// CheckoutSummary is the priced result of a successful checkout evaluation.
// The order is constructed from these figures; the client's own totals are
// never trusted.
type CheckoutSummary struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Discount    kernel.Money
	Total       kernel.Money
	DistanceKm  float64
}

// CheckoutContext is the snapshot a single evaluation runs against. It is
// assembled once, before the rules execute, so every rule sees the same
// data and the evaluation stays free of side effects.
type CheckoutContext struct {
	Cart             *cart.Cart
	ChefID           kernel.UUID
	DeliveryLocation kernel.GeoPoint

	Chef    ports.ChefSnapshot
	Prices  map[kernel.UUID]ports.PricePoint
	Summary CheckoutSummary

	config CheckoutConfig
	now    time.Time
}

// CheckoutRule is one named checkout validation. Rules never mutate the
// context and report every violation they find; the gate collects them all
// instead of stopping at the first.
type CheckoutRule interface {
	// Code returns the machine-readable rule code carried by the rule's
	// validation errors.
	Code() string

	// Check inspects the checkout context and returns a validation error
	// per violation, or nothing.
	Check(ctx context.Context, checkout *CheckoutContext) []errs.ValidationError
}

// CheckoutGate validates a cart against the marketplace's checkout rules
// and prices the would-be order.
//
// The rules run in a fixed order and all of them run every time, so a
// customer fixing their cart sees the complete error list at once instead
// of one failure per attempt. The gate only reads; no matter how evaluation
// ends, neither the cart nor any store data changes.
type CheckoutGate struct {
	config CheckoutConfig
	chefs  ports.ChefDirectory
	prices ports.PriceCatalog
	promos ports.PromoResolver
	rules  []CheckoutRule
	clock  func() time.Time
}

// NewCheckoutGate wires the gate with its rule chain. promos may be nil
// when no promo campaign is running; codes then resolve to a zero discount.
// clock defaults to time.Now and exists for tests that need to sit inside
// or outside the blocked window.
func NewCheckoutGate(
	config CheckoutConfig,
	chefs ports.ChefDirectory,
	prices ports.PriceCatalog,
	promos ports.PromoResolver,
	clock func() time.Time,
) (*CheckoutGate, error) {
	if chefs == nil {
		return nil, errs.NewValueIsRequiredError("chefs")
	}
	if prices == nil {
		return nil, errs.NewValueIsRequiredError("prices")
	}
	if clock == nil {
		clock = time.Now
	}

	return &CheckoutGate{
		config: config,
		chefs:  chefs,
		prices: prices,
		promos: promos,
		clock:  clock,
		rules: []CheckoutRule{
			cartNotEmptyRule{},
			singleChefRule{},
			itemAvailabilityRule{},
			priceDriftRule{},
			chefAvailabilityRule{},
			deliveryRangeRule{},
			blockedHoursRule{},
			amountBoundsRule{},
		},
	}, nil
}

// Evaluate runs the full rule chain over the customer's cart. On success it
// returns the priced summary and no validation errors; on failure it
// returns every violated rule's errors in rule order. The error return
// carries infrastructure faults only (directory or catalog lookups); rule
// violations never appear there.
func (g *CheckoutGate) Evaluate(
	ctx context.Context,
	shoppingCart *cart.Cart,
	chefID kernel.UUID,
	deliveryLocation kernel.GeoPoint,
	promoCode string,
) (CheckoutSummary, []errs.ValidationError, error) {
	if err := errors.Join(
		shoppingCart.Validate(),
		chefID.Validate(),
		deliveryLocation.Validate(),
	); err != nil {
		return CheckoutSummary{}, nil, err
	}

	checkout, err := g.buildContext(ctx, shoppingCart, chefID, deliveryLocation, promoCode)
	if err != nil {
		return CheckoutSummary{}, nil, err
	}

	var violations []errs.ValidationError
	for _, rule := range g.rules {
		violations = append(violations, rule.Check(ctx, checkout)...)
	}

	if len(violations) > 0 {
		return CheckoutSummary{}, violations, nil
	}

	return checkout.Summary, nil, nil
}

// buildContext snapshots everything the rules need: the chef, the live
// price points, the computed distance, and the priced summary.
func (g *CheckoutGate) buildContext(
	ctx context.Context,
	shoppingCart *cart.Cart,
	chefID kernel.UUID,
	deliveryLocation kernel.GeoPoint,
	promoCode string,
) (*CheckoutContext, error) {
	checkout := &CheckoutContext{
		Cart:             shoppingCart,
		ChefID:           chefID,
		DeliveryLocation: deliveryLocation,
		config:           g.config,
		now:              g.clock(),
	}

	chef, err := g.chefs.GetChef(ctx, chefID)
	if err != nil {
		return nil, err
	}
	checkout.Chef = chef

	ids := make([]kernel.UUID, 0, len(shoppingCart.Lines()))
	for _, line := range shoppingCart.Lines() {
		ids = append(ids, line.PricePointID())
	}

	prices, err := g.prices.GetPricePoints(ctx, ids)
	if err != nil {
		return nil, err
	}
	checkout.Prices = prices

	if chef.KitchenLocation.Validate() == nil {
		// Range violations are the delivery rule's business; here the
		// distance is only measured.
		if distance, err := chef.KitchenLocation.DistanceKm(deliveryLocation); err == nil {
			checkout.Summary.DistanceKm = distance
		}
	}

	return checkout, g.price(ctx, checkout, promoCode)
}

// price fills the summary's monetary figures from the cart and config.
func (g *CheckoutGate) price(ctx context.Context, checkout *CheckoutContext, promoCode string) error {
	subtotal := checkout.Cart.Subtotal()

	discount := kernel.ZeroMoney()
	if g.promos != nil && promoCode != "" {
		resolved, err := g.promos.Resolve(ctx, promoCode, subtotal)
		if err != nil {
			return err
		}
		discount = resolved
	}

	tax := subtotal.Mul(g.config.TaxRate)

	total := subtotal.Add(g.config.DeliveryFee).Add(tax)
	if discount.GreaterThan(total) {
		discount = total
	}
	total = total.Sub(discount)

	checkout.Summary.Subtotal = subtotal
	checkout.Summary.DeliveryFee = g.config.DeliveryFee
	checkout.Summary.Tax = tax
	checkout.Summary.Discount = discount
	checkout.Summary.Total = total
	return nil
}
