// Package http exposes the order lifecycle over a REST API. Handlers bind
// request payloads, build commands or queries, and translate domain errors
// to HTTP status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"homechef/internal/core/application/usecases/commands"
	"homechef/internal/core/application/usecases/queries"
	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/model/payment"
	"homechef/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler            commands.PlaceOrderCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	bulkChangeOrderStatusHandler commands.BulkChangeOrderStatusCommandHandler
	recordPaymentResultHandler   commands.RecordPaymentResultCommandHandler
	requestRefundHandler         commands.RequestRefundCommandHandler
	reviewRefundHandler          commands.ReviewRefundCommandHandler
	processRefundHandler         commands.ProcessRefundCommandHandler
	assignDeliveryHandler        commands.AssignDeliveryCommandHandler
	changeDeliveryStatusHandler  commands.ChangeDeliveryStatusCommandHandler
	createBulkOrderHandler       commands.CreateBulkOrderCommandHandler
	confirmBulkAssignmentHandler commands.ConfirmBulkAssignmentCommandHandler
	rejectBulkAssignmentHandler  commands.RejectBulkAssignmentCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	bulkChangeOrderStatusHandler commands.BulkChangeOrderStatusCommandHandler,
	recordPaymentResultHandler commands.RecordPaymentResultCommandHandler,
	requestRefundHandler commands.RequestRefundCommandHandler,
	reviewRefundHandler commands.ReviewRefundCommandHandler,
	processRefundHandler commands.ProcessRefundCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	changeDeliveryStatusHandler commands.ChangeDeliveryStatusCommandHandler,
	createBulkOrderHandler commands.CreateBulkOrderCommandHandler,
	confirmBulkAssignmentHandler commands.ConfirmBulkAssignmentCommandHandler,
	rejectBulkAssignmentHandler commands.RejectBulkAssignmentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		bulkChangeOrderStatusHandler: bulkChangeOrderStatusHandler,
		recordPaymentResultHandler:   recordPaymentResultHandler,
		requestRefundHandler:         requestRefundHandler,
		reviewRefundHandler:          reviewRefundHandler,
		processRefundHandler:         processRefundHandler,
		assignDeliveryHandler:        assignDeliveryHandler,
		changeDeliveryStatusHandler:  changeDeliveryStatusHandler,
		createBulkOrderHandler:       createBulkOrderHandler,
		confirmBulkAssignmentHandler: confirmBulkAssignmentHandler,
		rejectBulkAssignmentHandler:  rejectBulkAssignmentHandler,
		getOrderHandler:              getOrderHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/checkout", s.Checkout)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/status", s.BulkChangeOrderStatus)

	api.POST("/payments/webhook", s.RecordPaymentResult)
	api.POST("/payments/:paymentID/refunds", s.RequestRefund)
	api.POST("/payments/:paymentID/refunds/:refundID/review", s.ReviewRefund)
	api.POST("/payments/:paymentID/refunds/:refundID/process", s.ProcessRefund)

	api.POST("/deliveries/:deliveryID/assign", s.AssignDelivery)
	api.POST("/deliveries/:deliveryID/status", s.ChangeDeliveryStatus)

	api.POST("/bulk-orders", s.CreateBulkOrder)
	api.POST("/bulk-orders/:bulkOrderID/assignments/:assignmentID/confirm", s.ConfirmBulkAssignment)
	api.POST("/bulk-orders/:bulkOrderID/assignments/:assignmentID/reject", s.RejectBulkAssignment)
}

// Checkout handles POST /api/v1/checkout - turns the customer's cart into
// an order with a pending payment and an unassigned delivery. A rejected
// checkout returns 422 with the complete violation list.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	chefID, err := kernel.UUIDFromString(req.ChefID)
	if err != nil {
		return badRequest(ctx, "Invalid chef id: "+err.Error())
	}
	location, err := kernel.NewGeoPoint(req.DeliveryLatitude, req.DeliveryLongitude)
	if err != nil {
		return badRequest(ctx, "Invalid delivery location: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, chefID, location, req.PromoCode)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var rejected *commands.CheckoutRejectedError
		if errors.As(handleErr, &rejected) {
			violations := make([]Violation, len(rejected.Violations))
			for i, v := range rejected.Violations {
				violations[i] = Violation{Code: v.Code, Message: v.Message}
			}
			return ctx.JSON(http.StatusUnprocessableEntity, CheckoutRejectedResponse{
				Code:       http.StatusUnprocessableEntity,
				Message:    "Checkout rejected",
				Violations: violations,
			})
		}
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID - returns the order detail
// read model with items, history, and estimated preparation time.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(detail))
}

// GetActiveOrders handles GET /api/v1/orders/active - returns all orders
// not yet delivered or cancelled.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	payload := make([]ActiveOrderResponse, 0, len(orders))
	for _, row := range orders {
		payload = append(payload, activeOrderFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, payload)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - moves the
// order through its lifecycle on behalf of the requesting actor.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}
	actor, err := actorFromRequest(req.ActorRole, req.ActorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actor, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkChangeOrderStatus handles POST /api/v1/orders/status - applies one
// transition to many orders and reports per-order failures.
func (s *Server) BulkChangeOrderStatus(ctx echo.Context) error {
	var req BulkChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderIDs = append(orderIDs, id)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}
	actor, err := actorFromRequest(req.ActorRole, req.ActorUserID)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewBulkChangeOrderStatusCommand(orderIDs, target, actor, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid bulk transition data: "+err.Error())
	}

	report, err := s.bulkChangeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	failures := make([]BulkChangeFailure, len(report.Failures))
	for i, failure := range report.Failures {
		failures[i] = BulkChangeFailure{
			OrderID: failure.OrderID.String(),
			Reason:  failure.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, BulkChangeOrderStatusResponse{
		Succeeded: report.Succeeded,
		Failures:  failures,
	})
}

// RecordPaymentResult handles POST /api/v1/payments/webhook - the payment
// provider's settlement callback. Duplicate deliveries of the same outcome
// are acknowledged without effect.
func (s *Server) RecordPaymentResult(ctx echo.Context) error {
	var req PaymentWebhookRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	outcome, err := payment.StatusFromString(req.Outcome)
	if err != nil {
		return badRequest(ctx, "Invalid outcome: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentResultCommand(orderID, outcome)
	if err != nil {
		return badRequest(ctx, "Invalid payment result: "+err.Error())
	}

	if handleErr := s.recordPaymentResultHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRefund handles POST /api/v1/payments/:paymentID/refunds - opens a
// refund request against a completed payment.
func (s *Server) RequestRefund(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentID"))
	if err != nil {
		return badRequest(ctx, "Invalid payment id: "+err.Error())
	}

	var req RequestRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromFloat(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	refundID := kernel.NewUUID()
	cmd, err := commands.NewRequestRefundCommand(refundID, paymentID, amount, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid refund request: "+err.Error())
	}

	if handleErr := s.requestRefundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RequestRefundResponse{RefundID: refundID.String()})
}

// ReviewRefund handles POST /api/v1/payments/:paymentID/refunds/:refundID/review -
// approves or denies a requested refund.
func (s *Server) ReviewRefund(ctx echo.Context) error {
	paymentID, refundID, err := refundParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ReviewRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviewRefundCommand(paymentID, refundID, req.Approve)
	if err != nil {
		return badRequest(ctx, "Invalid refund review: "+err.Error())
	}

	if handleErr := s.reviewRefundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessRefund handles POST /api/v1/payments/:paymentID/refunds/:refundID/process -
// settles an approved refund and marks the payment refunded.
func (s *Server) ProcessRefund(ctx echo.Context) error {
	paymentID, refundID, err := refundParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewProcessRefundCommand(paymentID, refundID)
	if err != nil {
		return badRequest(ctx, "Invalid refund reference: "+err.Error())
	}

	if handleErr := s.processRefundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/deliveries/:deliveryID/assign - assigns
// the delivery to the given agent, or dispatches the least-loaded available
// agent when no agent id is supplied.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req AssignDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var agentID *kernel.UUID
	if req.AgentID != "" {
		id, err := kernel.UUIDFromString(req.AgentID)
		if err != nil {
			return badRequest(ctx, "Invalid agent id: "+err.Error())
		}
		agentID = &id
	}

	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDeliveryStatus handles POST /api/v1/deliveries/:deliveryID/status -
// advances the delivery leg, keeping it consistent with the order state.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req ChangeDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.changeDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBulkOrder handles POST /api/v1/bulk-orders - opens a pending bulk
// order for an event, split across the given chef assignments.
func (s *Server) CreateBulkOrder(ctx echo.Context) error {
	var req CreateBulkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	organizerID, err := kernel.UUIDFromString(req.OrganizerID)
	if err != nil {
		return badRequest(ctx, "Invalid organizer id: "+err.Error())
	}
	location, err := kernel.NewGeoPoint(req.EventLatitude, req.EventLongitude)
	if err != nil {
		return badRequest(ctx, "Invalid event location: "+err.Error())
	}

	assignments := make([]commands.BulkAssignmentRequest, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		chefID, err := kernel.UUIDFromString(a.ChefID)
		if err != nil {
			return badRequest(ctx, "Invalid chef id: "+err.Error())
		}
		assignments = append(assignments, commands.BulkAssignmentRequest{
			AssignmentID: kernel.NewUUID(),
			ChefID:       chefID,
			Quantity:     a.Quantity,
		})
	}

	bulkOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateBulkOrderCommand(
		bulkOrderID, organizerID, req.EventName, location,
		req.EventDate, req.TargetQuantity, req.Deadline, assignments)
	if err != nil {
		return badRequest(ctx, "Invalid bulk order data: "+err.Error())
	}

	if handleErr := s.createBulkOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateBulkOrderResponse{BulkOrderID: bulkOrderID.String()})
}

// ConfirmBulkAssignment handles
// POST /api/v1/bulk-orders/:bulkOrderID/assignments/:assignmentID/confirm -
// a chef committing to a quantity of their assignment.
func (s *Server) ConfirmBulkAssignment(ctx echo.Context) error {
	bulkOrderID, assignmentID, err := bulkAssignmentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ConfirmBulkAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmBulkAssignmentCommand(bulkOrderID, assignmentID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmBulkAssignmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectBulkAssignment handles
// POST /api/v1/bulk-orders/:bulkOrderID/assignments/:assignmentID/reject -
// a chef declining their assignment.
func (s *Server) RejectBulkAssignment(ctx echo.Context) error {
	bulkOrderID, assignmentID, err := bulkAssignmentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectBulkAssignmentCommand(bulkOrderID, assignmentID)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if handleErr := s.rejectBulkAssignmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderDetailFromQuery(detail queries.GetOrderQueryResponse) OrderDetailResponse {
	items := make([]OrderItemPayload, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemPayload{
			PricePointID: item.PricePointID.String(),
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	history := make([]OrderHistoryPayload, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, OrderHistoryPayload{
			Status:     entry.Status,
			ActorRole:  entry.ActorRole,
			Notes:      entry.Notes,
			RecordedAt: entry.RecordedAt,
		})
	}

	response := OrderDetailResponse{
		ID:                   detail.ID.String(),
		Number:               detail.Number,
		CustomerID:           detail.CustomerID.String(),
		Status:               detail.Status,
		Subtotal:             detail.Subtotal,
		DeliveryFee:          detail.DeliveryFee,
		Tax:                  detail.Tax,
		Discount:             detail.Discount,
		Total:                detail.Total,
		DeliveryLatitude:     detail.DeliveryLatitude,
		DeliveryLongitude:    detail.DeliveryLongitude,
		EstimatedPrepMinutes: detail.EstimatedPrepMinutes,
		CreatedAt:            detail.CreatedAt,
		DeliveredAt:          detail.DeliveredAt,
		Items:                items,
		History:              history,
	}
	if detail.ChefID != nil {
		response.ChefID = detail.ChefID.String()
	}

	return response
}

func activeOrderFromQuery(row queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	response := ActiveOrderResponse{
		ID:         row.ID.String(),
		Number:     row.Number,
		CustomerID: row.CustomerID.String(),
		Status:     row.Status,
		Total:      row.Total,
		CreatedAt:  row.CreatedAt,
	}
	if row.ChefID != nil {
		response.ChefID = row.ChefID.String()
	}

	return response
}

// actorFromRequest builds the acting identity from its wire representation.
// System actors carry no user id; every other role requires one.
func actorFromRequest(role string, userID string) (order.Actor, error) {
	if role == order.RoleSystem.String() {
		return order.SystemActor(), nil
	}

	id, err := kernel.UUIDFromString(userID)
	if err != nil {
		return order.Actor{}, err
	}

	switch role {
	case order.RoleAdmin.String():
		return order.AdminActor(id)
	case order.RoleCustomer.String():
		return order.CustomerActor(id)
	case order.RoleChef.String():
		return order.ChefActor(id)
	case order.RoleAgent.String():
		return order.AgentActor(id)
	default:
		return order.Actor{}, errs.NewValueIsInvalidError("actorRole")
	}
}

func refundParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	refundID, err := kernel.UUIDFromString(ctx.Param("refundID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return paymentID, refundID, nil
}

func bulkAssignmentParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	bulkOrderID, err := kernel.UUIDFromString(ctx.Param("bulkOrderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	assignmentID, err := kernel.UUIDFromString(ctx.Param("assignmentID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return bulkOrderID, assignmentID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the error taxonomy to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrTerminalState),
		errors.Is(err, errs.ErrInconsistentState),
		errors.Is(err, errs.ErrOverAllocation),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrInvalidCoordinate):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
