package guard_test

import (
	"errors"
	"testing"

	"homechef/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("should create constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("custom validation error")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass validation for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("should not be returned")
		err := g.Validate(customError)

		require.NoError(t, err)
	})

	t.Run("should fail validation for zero value guard", func(t *testing.T) {
		var g guard.ConstructorGuard

		expectedError := errors.New("object was not constructed")
		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("should return default error when nil error provided", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardUsageExample(t *testing.T) {
	errMoneyNotConstructed := errors.New("Money must be created via NewMoney")

	type money struct {
		amount int
		guard  guard.ConstructorGuard
	}

	newMoney := func(amount int) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(m money) error {
		return m.guard.Validate(errMoneyNotConstructed)
	}

	t.Run("should validate properly constructed object", func(t *testing.T) {
		m, err := newMoney(100)

		require.NoError(t, err)
		require.NoError(t, validate(m))
	})

	t.Run("should reject zero value object", func(t *testing.T) {
		var m money

		err := validate(m)

		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default error message mentions constructor", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}
