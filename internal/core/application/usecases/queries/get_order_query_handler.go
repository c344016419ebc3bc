package queries

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	basePrepMinutes    = 15
	perUnitPrepMinutes = 5
)

// GetOrderQueryHandler retrieves one order's detail from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the detail read model: the order
// row, its items, and the status history oldest first.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	totalUnits := 0
	for _, item := range response.Items {
		totalUnits += item.Quantity
	}
	response.EstimatedPrepMinutes = basePrepMinutes + totalUnits*perUnitPrepMinutes

	if response.History, err = h.loadHistory(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			chef_id,
			status,
			subtotal,
			delivery_fee,
			tax,
			discount,
			total,
			delivery_latitude,
			delivery_longitude,
			created_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var chefID *uuid.UUID
	var status int
	var deliveredAt *time.Time

	err = rows.Scan(
		&id,
		&response.Number,
		&customerID,
		&chefID,
		&status,
		&response.Subtotal,
		&response.DeliveryFee,
		&response.Tax,
		&response.Discount,
		&response.Total,
		&response.DeliveryLatitude,
		&response.DeliveryLongitude,
		&response.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if chefID != nil {
		chef, chefErr := kernel.UUIDFromBytes((*chefID)[:])
		if chefErr != nil {
			return GetOrderQueryResponse{}, chefErr
		}
		response.ChefID = &chef
	}
	response.Status = order.Status(status).String()
	response.DeliveredAt = deliveredAt

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			price_point_id,
			item_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var pricePointID uuid.UUID

		err = rows.Scan(
			&pricePointID,
			&item.ItemName,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		if item.PricePointID, err = kernel.UUIDFromBytes(pricePointID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderQueryHandler) loadHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderHistoryResponse, error) {
	history := make([]GetOrderHistoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor_role,
			notes,
			recorded_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY recorded_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryResponse
		var status, actorRole int

		err = rows.Scan(
			&status,
			&actorRole,
			&entry.Notes,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = order.Status(status).String()
		entry.ActorRole = order.Role(actorRole).String()
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
