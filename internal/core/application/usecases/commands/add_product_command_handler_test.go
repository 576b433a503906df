package commands_test

import (
	"testing"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddProductCommand(t *testing.T, currentStock int) commands.AddProductCommand {
	t.Helper()
	prices, err := product.NewPricePoints(
		decimal.NewFromInt(1000), decimal.NewFromInt(1200), decimal.NewFromInt(1500))
	require.NoError(t, err)

	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), "Harina 000", "HAR-000", "Almacén", prices, true, currentStock, 5)
	require.NoError(t, err)
	return cmd
}

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newAddProductCommand(t, 20)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	audit := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, "product.created", mock.AnythingOfType("string"), "products").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory, audit)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_InvalidStock(t *testing.T) {
	ctx := t.Context()
	cmd := newAddProductCommand(t, -3)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory, new(MockAuditLog))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	productRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddProductCommand{} // not constructed properly

	factory := new(MockProductUoWFactory)

	h := commands.NewAddProductCommandHandler(factory, new(MockAuditLog))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddProductCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
