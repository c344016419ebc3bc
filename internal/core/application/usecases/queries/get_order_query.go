// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// aggregates entirely: they read the tables directly through gorm.
package queries

import (
	"errors"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one order: charges, items, and
// the status history trail.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s, ready in ~%d min\n",
//	    detail.Number, detail.Status, detail.EstimatedPrepMinutes)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse represents one order line in the read model.
type GetOrderItemResponse struct {
	PricePointID kernel.UUID
	ItemName     string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// GetOrderHistoryResponse represents one entry of the order's status trail.
type GetOrderHistoryResponse struct {
	Status     string
	ActorRole  string
	Notes      string
	RecordedAt time.Time
}

// GetOrderQueryResponse represents the full order detail read model.
// EstimatedPrepMinutes is a derived figure: a 15 minute base plus 5 minutes
// per ordered unit.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	Number               string
	CustomerID           kernel.UUID
	ChefID               *kernel.UUID
	Status               string
	Subtotal             decimal.Decimal
	DeliveryFee          decimal.Decimal
	Tax                  decimal.Decimal
	Discount             decimal.Decimal
	Total                decimal.Decimal
	DeliveryLatitude     float64
	DeliveryLongitude    float64
	EstimatedPrepMinutes int
	CreatedAt            time.Time
	DeliveredAt          *time.Time
	Items                []GetOrderItemResponse
	History              []GetOrderHistoryResponse
}
