package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Violation is one checkout rule the cart failed.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckoutRejectedResponse carries every violation found during checkout
// validation, not just the first one.
type CheckoutRejectedResponse struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations"`
}

// CheckoutRequest asks to turn the customer's cart into an order delivered
// to the given coordinates. The promo code is optional.
type CheckoutRequest struct {
	CustomerID        string  `json:"customer_id"`
	ChefID            string  `json:"chef_id"`
	DeliveryLatitude  float64 `json:"delivery_latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude"`
	PromoCode         string  `json:"promo_code,omitempty"`
}

// CheckoutResponse returns the id of the newly placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// ChangeOrderStatusRequest moves an order to the target status on behalf of
// the given actor. Actor user id is required for all roles except system.
type ChangeOrderStatusRequest struct {
	Status      string `json:"status"`
	ActorRole   string `json:"actor_role"`
	ActorUserID string `json:"actor_user_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// BulkChangeOrderStatusRequest applies one transition to many orders.
type BulkChangeOrderStatusRequest struct {
	OrderIDs    []string `json:"order_ids"`
	Status      string   `json:"status"`
	ActorRole   string   `json:"actor_role"`
	ActorUserID string   `json:"actor_user_id,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// BulkChangeFailure reports why one order in a bulk action was skipped.
type BulkChangeFailure struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// BulkChangeOrderStatusResponse summarizes a bulk action: how many orders
// transitioned and which ones failed.
type BulkChangeOrderStatusResponse struct {
	Succeeded int                 `json:"succeeded"`
	Failures  []BulkChangeFailure `json:"failures"`
}

// PaymentWebhookRequest is the payment provider's settlement callback.
// Outcome is "completed" or "failed".
type PaymentWebhookRequest struct {
	OrderID string `json:"order_id"`
	Outcome string `json:"outcome"`
}

// RequestRefundRequest opens a refund request against a payment.
type RequestRefundRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// RequestRefundResponse returns the id of the opened refund request.
type RequestRefundResponse struct {
	RefundID string `json:"refund_id"`
}

// ReviewRefundRequest approves or denies a requested refund.
type ReviewRefundRequest struct {
	Approve bool `json:"approve"`
}

// AssignDeliveryRequest assigns a delivery to an agent. With an empty agent
// id the dispatcher picks the least-loaded available agent.
type AssignDeliveryRequest struct {
	AgentID string `json:"agent_id,omitempty"`
}

// ChangeDeliveryStatusRequest advances the delivery leg.
type ChangeDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// BulkAssignmentPayload is one chef's share of a bulk order.
type BulkAssignmentPayload struct {
	ChefID   string `json:"chef_id"`
	Quantity int    `json:"quantity"`
}

// CreateBulkOrderRequest opens a bulk order for an event.
type CreateBulkOrderRequest struct {
	OrganizerID    string                  `json:"organizer_id"`
	EventName      string                  `json:"event_name"`
	EventLatitude  float64                 `json:"event_latitude"`
	EventLongitude float64                 `json:"event_longitude"`
	EventDate      time.Time               `json:"event_date"`
	TargetQuantity int                     `json:"target_quantity"`
	Deadline       time.Time               `json:"deadline"`
	Assignments    []BulkAssignmentPayload `json:"assignments"`
}

// CreateBulkOrderResponse returns the id of the created bulk order.
type CreateBulkOrderResponse struct {
	BulkOrderID string `json:"bulk_order_id"`
}

// ConfirmBulkAssignmentRequest is a chef committing to a quantity.
type ConfirmBulkAssignmentRequest struct {
	Quantity int `json:"quantity"`
}

// OrderItemPayload is one line of an order detail.
type OrderItemPayload struct {
	PricePointID string          `json:"price_point_id"`
	ItemName     string          `json:"item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// OrderHistoryPayload is one entry of the order's status trail.
type OrderHistoryPayload struct {
	Status     string    `json:"status"`
	ActorRole  string    `json:"actor_role"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OrderDetailResponse is the full order read model returned by GET /orders/:id.
type OrderDetailResponse struct {
	ID                   string                `json:"id"`
	Number               string                `json:"number"`
	CustomerID           string                `json:"customer_id"`
	ChefID               string                `json:"chef_id,omitempty"`
	Status               string                `json:"status"`
	Subtotal             decimal.Decimal       `json:"subtotal"`
	DeliveryFee          decimal.Decimal       `json:"delivery_fee"`
	Tax                  decimal.Decimal       `json:"tax"`
	Discount             decimal.Decimal       `json:"discount"`
	Total                decimal.Decimal       `json:"total"`
	DeliveryLatitude     float64               `json:"delivery_latitude"`
	DeliveryLongitude    float64               `json:"delivery_longitude"`
	EstimatedPrepMinutes int                   `json:"estimated_prep_minutes"`
	CreatedAt            time.Time             `json:"created_at"`
	DeliveredAt          *time.Time            `json:"delivered_at,omitempty"`
	Items                []OrderItemPayload    `json:"items"`
	History              []OrderHistoryPayload `json:"history"`
}

// ActiveOrderResponse is one row of the active orders listing.
type ActiveOrderResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	ChefID     string          `json:"chef_id,omitempty"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}
