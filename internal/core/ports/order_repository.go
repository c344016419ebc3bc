package ports

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Update applies an optimistic version check: writing an aggregate whose
// stored version moved on since it was read fails with ConcurrencyConflict.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// items and status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every order that has not reached a terminal
	// status, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created before the
	// cutoff. Used by the stale-order sweep.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
