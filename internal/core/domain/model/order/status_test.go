package order_test

import (
	"testing"

	"homechef/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.InCart, order.Pending, order.Confirmed,
			order.Preparing, order.Ready, order.Delivered, order.Cancelled,
		}

		for _, s := range statuses {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "cart", order.InCart.String())
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "confirmed", order.Confirmed.String())
		assert.Equal(t, "preparing", order.Preparing.String())
		assert.Equal(t, "ready", order.Ready.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		statuses := []order.Status{
			order.InCart, order.Pending, order.Confirmed,
			order.Preparing, order.Ready, order.Delivered, order.Cancelled,
		}

		for _, s := range statuses {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("all other statuses are not terminal", func(t *testing.T) {
		for _, s := range []order.Status{order.InCart, order.Pending, order.Confirmed, order.Preparing, order.Ready} {
			assert.False(t, s.IsTerminal(), s.String())
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should follow the linear happy path", func(t *testing.T) {
		assert.True(t, order.InCart.CanTransitionTo(order.Pending))
		assert.True(t, order.Pending.CanTransitionTo(order.Confirmed))
		assert.True(t, order.Confirmed.CanTransitionTo(order.Preparing))
		assert.True(t, order.Preparing.CanTransitionTo(order.Ready))
		assert.True(t, order.Ready.CanTransitionTo(order.Delivered))
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{order.InCart, order.Pending, order.Confirmed, order.Preparing, order.Ready} {
			assert.True(t, s.CanTransitionTo(order.Cancelled), s.String())
		}
	})

	t.Run("should forbid skipping states", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Preparing))
		assert.False(t, order.Pending.CanTransitionTo(order.Ready))
		assert.False(t, order.Confirmed.CanTransitionTo(order.Delivered))
	})

	t.Run("should forbid moving backwards", func(t *testing.T) {
		assert.False(t, order.Ready.CanTransitionTo(order.Preparing))
		assert.False(t, order.Confirmed.CanTransitionTo(order.Pending))
	})

	t.Run("terminal statuses have no successors", func(t *testing.T) {
		for _, target := range []order.Status{
			order.InCart, order.Pending, order.Confirmed,
			order.Preparing, order.Ready, order.Delivered, order.Cancelled,
		} {
			assert.False(t, order.Delivered.CanTransitionTo(target), target.String())
			assert.False(t, order.Cancelled.CanTransitionTo(target), target.String())
		}
	})
}
