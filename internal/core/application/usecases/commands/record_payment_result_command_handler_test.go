package commands_test

import (
	"testing"
	"time"

	"homechef/internal/core/application/usecases/commands"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/model/payment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPendingPayment(t *testing.T, orderID kernel.UUID) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(), orderID, testMoney(t, 360), payment.MethodCash, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	return p
}

func TestRecordPaymentResultCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentResultCommand(orderID, payment.Completed)
	require.NoError(t, err)

	pay := testPendingPayment(t, orderID)
	parentOrder := testOrderInStatus(t, orderID, order.Pending)

	paymentRepo := new(MockPaymentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrder", mock.Anything, orderID).Return(pay, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Update", mock.Anything, pay).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, parentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentResultCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.Completed, pay.Status())
	require.Equal(t, order.Confirmed, parentOrder.Status())
	paymentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordPaymentResultCommandHandler_Handle_Failed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentResultCommand(orderID, payment.Failed)
	require.NoError(t, err)

	pay := testPendingPayment(t, orderID)
	parentOrder := testOrderInStatus(t, orderID, order.Pending)

	paymentRepo := new(MockPaymentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrder", mock.Anything, orderID).Return(pay, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Update", mock.Anything, pay).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, parentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentResultCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.Failed, pay.Status())
	require.Equal(t, order.Cancelled, parentOrder.Status())
	paymentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordPaymentResultCommandHandler_Handle_DuplicateEvent(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentResultCommand(orderID, payment.Completed)
	require.NoError(t, err)

	pay := testPendingPayment(t, orderID)
	require.NoError(t, pay.Apply(payment.Completed, time.Now()))
	parentOrder := testOrderInStatus(t, orderID, order.Confirmed)

	paymentRepo := new(MockPaymentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockPaymentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrder", mock.Anything, orderID).Return(pay, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Update", mock.Anything, pay).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, parentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentResultCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, payment.Completed, pay.Status())
	require.Equal(t, order.Confirmed, parentOrder.Status())
}

func TestNewRecordPaymentResultCommand_RejectsNonOutcomeStatus(t *testing.T) {
	_, err := commands.NewRecordPaymentResultCommand(kernel.NewUUID(), payment.Refunded)
	require.Error(t, err)
}
