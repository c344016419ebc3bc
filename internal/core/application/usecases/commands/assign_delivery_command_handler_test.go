package commands_test

import (
	"testing"
	"time"

	"homechef/internal/core/application/usecases/commands"
	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/services"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUnassignedDelivery(t *testing.T, id, orderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(id, orderID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	return d
}

func TestAssignDeliveryCommandHandler_Handle_ExplicitAgent(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, &agentID)
	require.NoError(t, err)

	aggregate := testUnassignedDelivery(t, deliveryID, orderID)
	parentOrder := testOrderInStatus(t, orderID, order.Confirmed)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("CountActiveByAgent", mock.Anything, agentID).Return(1, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	agents := new(MockAgentDirectory)
	h := commands.NewAssignDeliveryCommandHandler(factory, agents, services.NewDeliveryDispatcher(3))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Assigned, aggregate.Status())
	require.NotNil(t, aggregate.AgentID())
	require.True(t, aggregate.AgentID().IsEqual(agentID))
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_ExplicitAgentAtCapacity(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, &agentID)
	require.NoError(t, err)

	aggregate := testUnassignedDelivery(t, deliveryID, orderID)
	parentOrder := testOrderInStatus(t, orderID, order.Confirmed)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("CountActiveByAgent", mock.Anything, agentID).Return(3, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	agents := new(MockAgentDirectory)
	h := commands.NewAssignDeliveryCommandHandler(factory, agents, services.NewDeliveryDispatcher(3))
	err = h.Handle(ctx, cmd)

	var overAllocation *errs.OverAllocationError
	require.ErrorAs(t, err, &overAllocation)
	require.Equal(t, delivery.Unassigned, aggregate.Status())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_Dispatched(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, nil)
	require.NoError(t, err)

	aggregate := testUnassignedDelivery(t, deliveryID, orderID)
	parentOrder := testOrderInStatus(t, orderID, order.Confirmed)

	busy := ports.AgentSnapshot{ID: kernel.NewUUID(), Name: "Busy", IsOnShift: true, ActiveDeliveries: 2}
	idle := ports.AgentSnapshot{ID: kernel.NewUUID(), Name: "Idle", IsOnShift: true, ActiveDeliveries: 0}

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	agents := new(MockAgentDirectory)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parentOrder, nil).Once(),
		agents.On("GetAvailableAgents", mock.Anything).
			Return([]ports.AgentSnapshot{busy, idle}, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory, agents, services.NewDeliveryDispatcher(3))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Assigned, aggregate.Status())
	require.NotNil(t, aggregate.AgentID())
	require.True(t, aggregate.AgentID().IsEqual(idle.ID))
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	agents.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
