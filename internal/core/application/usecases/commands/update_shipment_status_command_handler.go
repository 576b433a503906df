package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler applies a courier status update to a
// shipment. The courier track is independent of the order lifecycle; the
// order is delivered through its own confirmation flow.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	audit      ports.AuditLog
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment
// status updates.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	audit ports.AuditLog,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the status update command.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"shipment.status_updated",
		fmt.Sprintf("shipment %s moved to %s", s.TrackingCode(), s.Status()),
		"shipments",
	)

	return nil
}
