package ports

import (
	"context"

	"homechef/internal/core/domain/model/kernel"
)

// ChefSnapshot is the read-side view of a chef that checkout and dispatch
// need: whether the kitchen takes orders and where it is.
type ChefSnapshot struct {
	ID              kernel.UUID
	Name            string
	AcceptingOrders bool
	KitchenLocation kernel.GeoPoint
}

// PricePoint is the current live state of one orderable item.
type PricePoint struct {
	ID          kernel.UUID
	ChefID      kernel.UUID
	ItemName    string
	Price       kernel.Money
	IsAvailable bool
}

// AgentSnapshot is the read-side view of a delivery agent used when picking
// someone for a new delivery.
type AgentSnapshot struct {
	ID               kernel.UUID
	Name             string
	IsOnShift        bool
	ActiveDeliveries int
}

// ChefDirectory supplies chef read models for checkout validation.
type ChefDirectory interface {
	// GetChef retrieves the chef snapshot, or ObjectNotFound.
	GetChef(ctx context.Context, chefID kernel.UUID) (ChefSnapshot, error)
}

// PriceCatalog supplies current live prices and availability for price
// points referenced by cart lines.
type PriceCatalog interface {
	// GetPricePoints retrieves snapshots for the given price point ids,
	// keyed by id. Missing ids are absent from the result, not an error.
	GetPricePoints(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]PricePoint, error)
}

// PromoResolver turns a promo code into a discount for the given subtotal.
// An unknown or expired code resolves to a zero discount rather than an
// error; checkout never fails on a bad code.
type PromoResolver interface {
	Resolve(ctx context.Context, code string, subtotal kernel.Money) (kernel.Money, error)
}

// AgentDirectory supplies delivery agent read models for dispatch.
type AgentDirectory interface {
	// GetAvailableAgents retrieves agents currently on shift together with
	// their active delivery counts.
	GetAvailableAgents(ctx context.Context) ([]AgentSnapshot, error)
}
