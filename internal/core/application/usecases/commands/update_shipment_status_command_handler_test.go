package commands_test

import (
	"testing"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)
	cmd, err := commands.NewUpdateShipmentStatusCommand(s.ID(), shipment.InTransit)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	audit := new(MockAuditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, "shipment.status_updated", mock.AnythingOfType("string"), "shipments").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, audit)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, s.Status())
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_UnknownShipment(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, shipment.Delivered)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentStatusCommandHandler(factory, new(MockAuditLog))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewUpdateShipmentStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateShipmentStatusCommand(kernel.NewUUID(), shipment.StatusUnknown)
	require.Error(t, err)
}
