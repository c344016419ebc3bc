package ports

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/bulkorder"
	"homechef/internal/core/domain/model/kernel"
)

// BulkOrderRepository defines the persistence contract for bulk order
// aggregates, assignments included.
type BulkOrderRepository interface {
	// Add persists a new bulk order aggregate to storage.
	Add(ctx context.Context, aggregate *bulkorder.BulkOrder) error

	// Update persists changes to an existing bulk order aggregate.
	Update(ctx context.Context, aggregate *bulkorder.BulkOrder) error

	// Get retrieves a bulk order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bulkorder.BulkOrder, error)

	// GetAllPendingExpired retrieves pending bulk orders whose confirmation
	// deadline lies before now. Used by the deadline sweep.
	GetAllPendingExpired(ctx context.Context, now time.Time) ([]*bulkorder.BulkOrder, error)
}
