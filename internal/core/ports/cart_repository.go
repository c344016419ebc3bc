// Package ports defines the contracts between the domain layer and
// infrastructure: repositories for each aggregate, the unit of work that
// binds them into one transaction, and read-side directories for chef and
// pricing data. Implementations live under internal/adapters.
package ports

import (
	"context"

	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the customer's cart, locking the row for the
	// duration of the transaction. Checkout relies on this lock: a second
	// concurrent checkout of the same cart blocks until the first commits
	// and then observes the emptied cart.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
