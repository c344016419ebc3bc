package ports

import (
	"context"

	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery for the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// CountActiveByAgent returns how many deliveries the agent currently
	// carries in assigned or picked_up status. Assignment capacity checks
	// build on this count.
	CountActiveByAgent(ctx context.Context, agentID kernel.UUID) (int, error)
}
