package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/services"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"
)

type stubChefDirectory struct {
	chef ports.ChefSnapshot
}

func (s stubChefDirectory) GetChef(_ context.Context, _ kernel.UUID) (ports.ChefSnapshot, error) {
	return s.chef, nil
}

type stubPriceCatalog struct {
	points map[kernel.UUID]ports.PricePoint
}

func (s stubPriceCatalog) GetPricePoints(
	_ context.Context, ids []kernel.UUID,
) (map[kernel.UUID]ports.PricePoint, error) {
	result := make(map[kernel.UUID]ports.PricePoint)
	for _, id := range ids {
		if point, ok := s.points[id]; ok {
			result[id] = point
		}
	}
	return result, nil
}

type stubPromoResolver struct {
	discounts map[string]kernel.Money
}

func (s stubPromoResolver) Resolve(
	_ context.Context, code string, _ kernel.Money,
) (kernel.Money, error) {
	if discount, ok := s.discounts[code]; ok {
		return discount, nil
	}
	return kernel.ZeroMoney(), nil
}

// checkoutFixture is one customer's cart from one chef: two lines, 300.00
// subtotal, live prices matching the captured ones, everything available,
// delivery 16 km away, evaluated at noon.
type checkoutFixture struct {
	gate     *services.CheckoutGate
	cart     *cart.Cart
	chefID   kernel.UUID
	location kernel.GeoPoint
	catalog  stubPriceCatalog
	chefs    stubChefDirectory
	config   services.CheckoutConfig
	clock    time.Time
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	chefID := kernel.NewUUID()
	kottuID := kernel.NewUUID()
	riceID := kernel.NewUUID()

	f := &checkoutFixture{
		chefID: chefID,
		// Colombo kitchen, Moratuwa delivery, roughly 17 km.
		location: mustGeoPoint(t, 6.7730, 79.8816),
		clock:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}

	f.chefs = stubChefDirectory{chef: ports.ChefSnapshot{
		ID:              chefID,
		Name:            "Amara's Kitchen",
		AcceptingOrders: true,
		KitchenLocation: mustGeoPoint(t, 6.9271, 79.8612),
	}}

	f.catalog = stubPriceCatalog{points: map[kernel.UUID]ports.PricePoint{
		kottuID: {
			ID: kottuID, ChefID: chefID, ItemName: "Kottu Roti",
			Price: mustMoney(t, "100.00"), IsAvailable: true,
		},
		riceID: {
			ID: riceID, ChefID: chefID, ItemName: "Fried Rice",
			Price: mustMoney(t, "100.00"), IsAvailable: true,
		},
	}}

	f.config = services.CheckoutConfig{
		ServiceRadiusKm:  50,
		MinOrderAmount:   mustMoney(t, "250.00"),
		MaxOrderAmount:   mustMoney(t, "50000.00"),
		DeliveryFee:      mustMoney(t, "50.00"),
		TaxRate:          decimal.NewFromFloat(0.05),
		BlockedFromHour:  23,
		BlockedUntilHour: 6,
	}

	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	kottu, err := cart.NewLine(kottuID, chefID, "Kottu Roti", 2, mustMoney(t, "100.00"))
	require.NoError(t, err)
	rice, err := cart.NewLine(riceID, chefID, "Fried Rice", 1, mustMoney(t, "100.00"))
	require.NoError(t, err)
	require.NoError(t, c.AddLine(kottu))
	require.NoError(t, c.AddLine(rice))
	f.cart = c

	f.rebuild(t, nil)
	return f
}

// rebuild wires the gate from the fixture's current stubs and config.
func (f *checkoutFixture) rebuild(t *testing.T, promos ports.PromoResolver) {
	t.Helper()
	clock := f.clock
	gate, err := services.NewCheckoutGate(f.config, f.chefs, f.catalog, promos,
		func() time.Time { return clock })
	require.NoError(t, err)
	f.gate = gate
}

func (f *checkoutFixture) evaluate(t *testing.T) (services.CheckoutSummary, []errs.ValidationError) {
	t.Helper()
	summary, violations, err := f.gate.Evaluate(
		context.Background(), f.cart, f.chefID, f.location, "")
	require.NoError(t, err)
	return summary, violations
}

func codes(violations []errs.ValidationError) []string {
	result := make([]string, 0, len(violations))
	for _, v := range violations {
		result = append(result, v.Code)
	}
	return result
}

func TestCheckoutGate_Evaluate(t *testing.T) {
	t.Run("should pass a clean cart and price it", func(t *testing.T) {
		f := newCheckoutFixture(t)

		summary, violations := f.evaluate(t)

		require.Empty(t, violations)
		assert.Equal(t, "300.00", summary.Subtotal.String())
		assert.Equal(t, "50.00", summary.DeliveryFee.String())
		assert.Equal(t, "15.00", summary.Tax.String())
		assert.True(t, summary.Discount.IsZero())
		assert.Equal(t, "365.00", summary.Total.String())
		assert.InDelta(t, 17.3, summary.DistanceKm, 1.0)
	})

	t.Run("total always equals subtotal plus fee plus tax minus discount", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.rebuild(t, stubPromoResolver{discounts: map[string]kernel.Money{
			"WELCOME": mustMoney(t, "65.00"),
		}})

		summary, violations, err := f.gate.Evaluate(
			context.Background(), f.cart, f.chefID, f.location, "WELCOME")

		require.NoError(t, err)
		require.Empty(t, violations)
		expected := summary.Subtotal.Add(summary.DeliveryFee).Add(summary.Tax).Sub(summary.Discount)
		assert.True(t, summary.Total.IsEqual(expected))
		assert.Equal(t, "300.00", summary.Total.String())
	})

	t.Run("unknown promo code resolves to zero discount, not an error", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.rebuild(t, stubPromoResolver{})

		summary, violations, err := f.gate.Evaluate(
			context.Background(), f.cart, f.chefID, f.location, "NOSUCHCODE")

		require.NoError(t, err)
		require.Empty(t, violations)
		assert.True(t, summary.Discount.IsZero())
	})

	t.Run("should report an empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.cart.Clear()

		_, violations := f.evaluate(t)

		// An empty cart also fails the distance-independent amount rule.
		assert.Contains(t, codes(violations), "cart_empty")
	})

	t.Run("should report exactly one violation for a single broken rule", func(t *testing.T) {
		f := newCheckoutFixture(t)

		otherChefID := kernel.NewUUID()
		pointID := kernel.NewUUID()
		f.catalog.points[pointID] = ports.PricePoint{
			ID: pointID, ChefID: otherChefID, ItemName: "String Hoppers",
			Price: mustMoney(t, "50.00"), IsAvailable: true,
		}
		line, err := cart.NewLine(pointID, otherChefID, "String Hoppers", 1, mustMoney(t, "50.00"))
		require.NoError(t, err)
		require.NoError(t, f.cart.AddLine(line))

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "mixed_chefs", violations[0].Code)
		assert.Contains(t, violations[0].Message, "String Hoppers")
	})

	t.Run("should report two independent violations together in rule order", func(t *testing.T) {
		f := newCheckoutFixture(t)

		// Chef stops accepting orders and one item goes off the menu.
		f.chefs.chef.AcceptingOrders = false
		for id, point := range f.catalog.points {
			if point.ItemName == "Fried Rice" {
				point.IsAvailable = false
				f.catalog.points[id] = point
			}
		}
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 2)
		assert.Equal(t, []string{"item_unavailable", "chef_unavailable"}, codes(violations))
	})

	t.Run("should report unavailable items by name", func(t *testing.T) {
		f := newCheckoutFixture(t)
		for id, point := range f.catalog.points {
			point.IsAvailable = false
			f.catalog.points[id] = point
		}
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "item_unavailable", violations[0].Code)
		assert.Contains(t, violations[0].Message, "Kottu Roti")
		assert.Contains(t, violations[0].Message, "Fried Rice")
	})

	t.Run("should fail rather than silently re-price on drift", func(t *testing.T) {
		f := newCheckoutFixture(t)
		for id, point := range f.catalog.points {
			if point.ItemName == "Kottu Roti" {
				point.Price = mustMoney(t, "120.00")
				f.catalog.points[id] = point
			}
		}
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "price_drift", violations[0].Code)
		assert.Contains(t, violations[0].Message, "Kottu Roti")
	})

	t.Run("should reject delivery outside the service radius", func(t *testing.T) {
		f := newCheckoutFixture(t)
		// Jaffna, about 300 km from the Colombo kitchen.
		f.location = mustGeoPoint(t, 9.6615, 80.0255)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "delivery_range", violations[0].Code)
	})

	t.Run("should reject zero distance as unverifiable", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.location = f.chefs.chef.KitchenLocation

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "delivery_range", violations[0].Code)
	})

	t.Run("should block orders during the nightly window", func(t *testing.T) {
		for _, hour := range []int{23, 0, 3, 5} {
			f := newCheckoutFixture(t)
			f.clock = time.Date(2025, 6, 2, hour, 30, 0, 0, time.UTC)
			f.rebuild(t, nil)

			_, violations := f.evaluate(t)

			require.Len(t, violations, 1, "hour %d", hour)
			assert.Equal(t, "blocked_hours", violations[0].Code)
		}
	})

	t.Run("should accept an order right when the window closes", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.clock = time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		assert.Empty(t, violations)
	})

	t.Run("should enforce the minimum subtotal", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.config.MinOrderAmount = mustMoney(t, "500.00")
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "amount_bounds", violations[0].Code)
		assert.Contains(t, violations[0].Message, "minimum")
	})

	t.Run("should enforce the maximum total", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.config.MaxOrderAmount = mustMoney(t, "350.00")
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.Len(t, violations, 1)
		assert.Equal(t, "amount_bounds", violations[0].Code)
		assert.Contains(t, violations[0].Message, "maximum")
	})

	t.Run("should leave the cart untouched on failure", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.chefs.chef.AcceptingOrders = false
		f.rebuild(t, nil)

		_, violations := f.evaluate(t)

		require.NotEmpty(t, violations)
		assert.Len(t, f.cart.Lines(), 2)
		assert.Equal(t, "300.00", f.cart.Subtotal().String())
	})
}

func TestNewCheckoutGate(t *testing.T) {
	t.Run("should require chef directory and price catalog", func(t *testing.T) {
		_, err := services.NewCheckoutGate(
			services.DefaultCheckoutConfig(), nil, stubPriceCatalog{}, nil, nil)
		require.Error(t, err)

		_, err = services.NewCheckoutGate(
			services.DefaultCheckoutConfig(), stubChefDirectory{}, nil, nil, nil)
		require.Error(t, err)
	})
}
