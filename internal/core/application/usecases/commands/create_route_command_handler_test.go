package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	routeID := kernel.NewUUID()
	first := newConfirmedOrder(t, kernel.NewUUID(), 1)
	second := newConfirmedOrder(t, kernel.NewUUID(), 2)

	cmd, err := commands.NewCreateRouteCommand(
		routeID, "Reparto zona norte", nil, time.Now(),
		[]kernel.UUID{first.ID(), second.ID()})
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockRouteUoW)
	audit := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		orderRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		orderRepo.On("Update", ctx, first).Return(nil).Once(),
		orderRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		orderRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, "route.created", mock.AnythingOfType("string"), "routes").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRouteCommandHandler(factory, audit)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	for _, o := range []*order.Order{first, second} {
		assert.Equal(t, order.Delivering, o.Status())
		require.NotNil(t, o.RouteID())
		assert.True(t, o.RouteID().IsEqual(routeID))
		require.NotNil(t, o.DeliveryCode())
		assert.Len(t, *o.DeliveryCode(), 4)
	}
	routeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_UnassignableOrderRollsBack(t *testing.T) {
	ctx := t.Context()
	first := newConfirmedOrder(t, kernel.NewUUID(), 1)
	second := newDeliveringOrder(t, "1234") // already on another route

	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), "Reparto zona sur", nil, time.Now(),
		[]kernel.UUID{first.ID(), second.ID()})
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockRouteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		orderRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		orderRepo.On("Update", ctx, first).Return(nil).Once(),
		orderRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRouteCommandHandler(factory, new(MockAuditLog))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), "Reparto", nil, time.Now(), nil)
	require.NoError(t, err)

	uow := new(MockRouteUoW)
	factory := new(MockRouteUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateRouteCommandHandler(factory, new(MockAuditLog))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
