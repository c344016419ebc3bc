package commands_test

import (
	"context"
	"testing"
	"time"

	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(6.9271, 79.8612)
	require.NoError(t, err)
	return p
}

func testCart(t *testing.T, customerID, chefID, pricePointID kernel.UUID) *cart.Cart {
	t.Helper()
	line, err := cart.NewLine(pricePointID, chefID, "Kottu Roti", 2, testMoney(t, 150))
	require.NoError(t, err)
	c, err := cart.RestoreCart(kernel.NewUUID(), customerID, []cart.Line{line})
	require.NoError(t, err)
	return c
}

func testOrderInStatus(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	chefID := kernel.NewUUID()
	item, err := order.NewItem(kernel.NewUUID(), "Kottu Roti", 2, testMoney(t, 150))
	require.NoError(t, err)
	charges, err := order.NewCharges(
		testMoney(t, 300), testMoney(t, 50), testMoney(t, 10), kernel.ZeroMoney())
	require.NoError(t, err)
	created := time.Now().Add(-time.Hour)
	entry, err := order.NewHistoryEntry(order.Pending, order.SystemActor(), "order placed", created)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		id, "ORD-9F2C41B7", kernel.NewUUID(), &chefID,
		[]order.Item{item}, charges, testLocation(t),
		status, []order.HistoryEntry{entry},
		created, created, nil, 1)
	require.NoError(t, err)
	return o
}

// stub catalog implementations for wiring a checkout gate in handler tests.

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
	result := make(map[kernel.UUID]ports.PricePoint, len(ids))
	for _, id := range ids {
		if point, ok := s.points[id]; ok {
			result[id] = point
		}
	}
	return result, nil
}
