package commands

import (
	"context"
	"time"

	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/model/payment"
	"homechef/internal/core/domain/services"
)

// PlaceOrderCommandHandler turns a validated cart into an order with its
// pending payment and unassigned delivery.
//
// The whole checkout is one transaction. The customer's cart row is read
// under a lock, so a second concurrent checkout of the same cart waits and
// then sees an empty cart. When the checkout gate reports violations,
// nothing is created and nothing on the cart changes.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gate       *services.CheckoutGate
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	gate *services.CheckoutGate,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle processes the checkout command. Returns *CheckoutRejectedError
// with the full violation list when the cart does not pass the gate.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shoppingCart, err := uow.CartRepository().GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	summary, violations, err := h.gate.Evaluate(
		ctx, shoppingCart, cmd.ChefID(), cmd.DeliveryLocation(), cmd.PromoCode())
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return &CheckoutRejectedError{Violations: violations}
	}

	now := time.Now()
	chefID := cmd.ChefID()

	items := make([]order.Item, 0, len(shoppingCart.Lines()))
	for _, line := range shoppingCart.Lines() {
		item, err := order.NewItem(line.PricePointID(), line.ItemName(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	charges, err := order.NewCharges(
		summary.Subtotal, summary.DeliveryFee, summary.Tax, summary.Discount)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), order.NewNumber(), cmd.CustomerID(), &chefID,
		items, charges, cmd.DeliveryLocation(), now)
	if err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(
		kernel.NewUUID(), newOrder.ID(), charges.Total(), payment.MethodCash, now)
	if err != nil {
		return err
	}

	newDelivery, err := delivery.NewDelivery(kernel.NewUUID(), newOrder.ID(), now)
	if err != nil {
		return err
	}

	shoppingCart.Clear()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}
	if err = uow.CartRepository().Update(ctx, shoppingCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
