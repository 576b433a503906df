package commands_test

import (
	"testing"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	r := newPendingRoute(t)
	pending := newDeliveringOrder(t, "1111")
	alreadyDone := newDeliveringOrder(t, "2222")
	require.NoError(t, alreadyDone.MarkDelivered(pending.CreatedAt()))

	cmd, err := commands.NewCompleteRouteCommand(r.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockRouteUoW)
	audit := new(MockAuditLog)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		orderRepo.On("GetAllByRouteID", ctx, r.ID()).
			Return([]*order.Order{pending, alreadyDone}, nil).Once(),
		orderRepo.On("Update", ctx, pending).Return(nil).Once(),
		routeRepo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, "route.completed", mock.AnythingOfType("string"), "routes").Once(),
		notifier.On("Notify", ctx, "Ruta completada", mock.AnythingOfType("string"), "routes").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRouteCommandHandler(factory, audit, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.Completed, r.Status())
	// the terminal order is skipped, the pending one is bulk-delivered
	assert.Equal(t, order.Delivered, pending.Status())
	routeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteRouteCommandHandler_Handle_RefusesDoubleCompletion(t *testing.T) {
	ctx := t.Context()
	r := newPendingRoute(t)
	require.NoError(t, r.Complete())

	cmd, err := commands.NewCompleteRouteCommand(r.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockRouteUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		routeRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRouteCommandHandler(factory, new(MockAuditLog), notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "GetAllByRouteID", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
