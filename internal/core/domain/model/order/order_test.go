package order_test

import (
	"testing"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustCharges(t *testing.T, subtotal, fee, tax, discount string) order.Charges {
	t.Helper()
	c, err := order.NewCharges(
		mustMoney(t, subtotal), mustMoney(t, fee), mustMoney(t, tax), mustMoney(t, discount))
	require.NoError(t, err)
	return c
}

func newTestOrder(t *testing.T, chefID kernel.UUID, customerID kernel.UUID) *order.Order {
	t.Helper()

	location, err := kernel.NewGeoPoint(6.9271, 79.8612)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Kottu Roti", 2, mustMoney(t, "150.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-9F2C41B7",
		customerID,
		&chefID,
		[]order.Item{item},
		mustCharges(t, "300.00", "50.00", "10.00", "0.00"),
		location,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewCharges(t *testing.T) {
	t.Run("should derive total from components", func(t *testing.T) {
		c := mustCharges(t, "300.00", "50.00", "10.00", "0.00")

		assert.Equal(t, "360.00", c.Total().String())
	})

	t.Run("should apply discount", func(t *testing.T) {
		c := mustCharges(t, "300.00", "50.00", "10.00", "60.00")

		assert.Equal(t, "300.00", c.Total().String())
	})

	t.Run("should fail when discount exceeds charges", func(t *testing.T) {
		_, err := order.NewCharges(
			mustMoney(t, "100.00"), mustMoney(t, "0.00"),
			mustMoney(t, "0.00"), mustMoney(t, "200.00"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with initial history entry", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD-9F2C41B7", o.Number())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Pending, history[0].Status())
		assert.Equal(t, order.RoleSystem, history[0].ActorRole())
	})

	t.Run("should fail without items", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
		chefID := kernel.NewUUID()

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-9F2C41B7", kernel.NewUUID(), &chefID,
			nil, mustCharges(t, "300.00", "50.00", "10.00", "0.00"), location, time.Now())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderHasNoItems, err)
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
		chefID := kernel.NewUUID()
		item, _ := order.NewItem(kernel.NewUUID(), "Kottu Roti", 1, mustMoney(t, "150.00"))

		_, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), &chefID,
			[]order.Item{item}, mustCharges(t, "150.00", "50.00", "10.00", "0.00"), location, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		var location kernel.GeoPoint
		chefID := kernel.NewUUID()
		item, _ := order.NewItem(kernel.NewUUID(), "Kottu Roti", 1, mustMoney(t, "150.00"))

		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-9F2C41B7", kernel.NewUUID(), &chefID,
			[]order.Item{item}, mustCharges(t, "150.00", "50.00", "10.00", "0.00"), location, time.Now())

		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	chefID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	admin, err := order.AdminActor(adminID)
	require.NoError(t, err)
	chef, err := order.ChefActor(chefID)
	require.NoError(t, err)
	customer, err := order.CustomerActor(customerID)
	require.NoError(t, err)

	t.Run("should walk the full happy path with one history entry each", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)
		now := time.Now()

		require.NoError(t, o.TransitionTo(order.Confirmed, order.SystemActor(), "payment recorded", now))
		require.NoError(t, o.TransitionTo(order.Preparing, chef, "", now))
		require.NoError(t, o.TransitionTo(order.Ready, chef, "", now))
		require.NoError(t, o.TransitionTo(order.Delivered, order.SystemActor(), "delivery completed", now))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())

		// 1 initial entry + 4 transitions.
		history := o.History()
		require.Len(t, history, 5)
		assert.Equal(t, order.Confirmed, history[1].Status())
		assert.Equal(t, order.Preparing, history[2].Status())
		assert.Equal(t, order.Ready, history[3].Status())
		assert.Equal(t, order.Delivered, history[4].Status())
	})

	t.Run("should be a no-op when target equals current status", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		require.NoError(t, o.TransitionTo(order.Pending, order.SystemActor(), "", time.Now()))

		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("should fail with TerminalState from terminal statuses for every target", func(t *testing.T) {
		targets := []order.Status{
			order.InCart, order.Pending, order.Confirmed,
			order.Preparing, order.Ready,
		}

		o := newTestOrder(t, chefID, customerID)
		require.NoError(t, o.TransitionTo(order.Cancelled, admin, "", time.Now()))

		for _, target := range targets {
			err := o.TransitionTo(target, admin, "", time.Now())

			require.Error(t, err, target.String())
			assert.ErrorIs(t, err, errs.ErrTerminalState, target.String())
		}
		assert.Len(t, o.History(), 2)
	})

	t.Run("should fail with InvalidTransition for targets outside successor set", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		err := o.TransitionTo(order.Ready, admin, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Len(t, o.History(), 1)
	})

	t.Run("only the system may confirm a pending order", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		err := o.TransitionTo(order.Confirmed, admin, "", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		require.NoError(t, o.TransitionTo(order.Confirmed, order.SystemActor(), "", time.Now()))
	})

	t.Run("only admin or the assigned chef may start preparing", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)
		require.NoError(t, o.TransitionTo(order.Confirmed, order.SystemActor(), "", time.Now()))

		otherChef, err := order.ChefActor(kernel.NewUUID())
		require.NoError(t, err)

		err = o.TransitionTo(order.Preparing, otherChef, "", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		err = o.TransitionTo(order.Preparing, customer, "", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		require.NoError(t, o.TransitionTo(order.Preparing, chef, "", time.Now()))
	})

	t.Run("customer may cancel while pending or confirmed only", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		require.NoError(t, o.TransitionTo(order.Confirmed, order.SystemActor(), "", time.Now()))
		require.NoError(t, o.TransitionTo(order.Preparing, chef, "", time.Now()))

		err := o.TransitionTo(order.Cancelled, customer, "changed my mind", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("owning customer may cancel a pending order", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		require.NoError(t, o.TransitionTo(order.Cancelled, customer, "changed my mind", time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())

		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.Cancelled, history[1].Status())
		assert.Equal(t, "changed my mind", history[1].Notes())
	})

	t.Run("another customer may not cancel", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		stranger, err := order.CustomerActor(kernel.NewUUID())
		require.NoError(t, err)

		err = o.TransitionTo(order.Cancelled, stranger, "", time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		o := newTestOrder(t, chefID, customerID)

		var actor order.Actor
		err := o.TransitionTo(order.Confirmed, actor, "", time.Now())

		require.Error(t, err)
	})
}

func TestOrder_AssignChef(t *testing.T) {
	t.Run("should assign chef to chefless order", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
		item, _ := order.NewItem(kernel.NewUUID(), "Buffet Pack", 100, mustMoney(t, "500.00"))

		o, err := order.NewOrder(
			kernel.NewUUID(), "BULK-000042", kernel.NewUUID(), nil,
			[]order.Item{item}, mustCharges(t, "50000.00", "0.00", "0.00", "0.00"), location, time.Now())
		require.NoError(t, err)
		assert.Nil(t, o.ChefID())

		chefID := kernel.NewUUID()
		require.NoError(t, o.AssignChef(chefID))
		require.NotNil(t, o.ChefID())
		assert.True(t, o.ChefID().IsEqual(chefID))
	})

	t.Run("should fail when chef already assigned", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		err := o.AssignChef(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInconsistentState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with history and version", func(t *testing.T) {
		chefID := kernel.NewUUID()
		original := newTestOrder(t, chefID, kernel.NewUUID())
		require.NoError(t, original.TransitionTo(order.Confirmed, order.SystemActor(), "", time.Now()))

		restored, err := order.RestoreOrder(
			original.ID(), original.Number(), original.CustomerID(), original.ChefID(),
			original.Items(), original.Charges(), original.DeliveryLocation(),
			original.Status(), original.History(),
			original.CreatedAt(), original.UpdatedAt(), original.DeliveredAt(), 3)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, order.Confirmed, restored.Status())
		assert.Len(t, restored.History(), 2)
		assert.Equal(t, 3, restored.Version())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		original := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID())

		_, err := order.RestoreOrder(
			original.ID(), original.Number(), original.CustomerID(), original.ChefID(),
			original.Items(), original.Charges(), original.DeliveryLocation(),
			order.Unknown, original.History(),
			original.CreatedAt(), original.UpdatedAt(), nil, 0)

		require.Error(t, err)
	})
}
