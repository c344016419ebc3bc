package ports

import (
	"context"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates,
// refunds included.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrder retrieves the payment settling the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
