package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// CreateShipmentCommandHandler creates a courier shipment for an order.
// At most one shipment may exist per order. The fast path checks for an
// existing shipment up front; the unique constraint on order_id catches
// the race where two requests pass that check concurrently, and the loser
// re-reads and returns the winner's shipment.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	audit      ports.AuditLog
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, audit ports.AuditLog) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the shipment creation command and returns the shipment
// for the order, whether created now or found existing.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	existing, err := shipmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.StartPreparing(); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.OrderID(), cmd.Provider(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_ = uow.Rollback(ctx)
			return h.getExisting(ctx, cmd.OrderID())
		}
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx,
		"shipment.created",
		fmt.Sprintf("shipment %s created for order %s", s.TrackingCode(), o.Number()),
		"shipments",
	)

	return s, nil
}

// getExisting re-reads the winner's shipment after losing the duplicate-key
// race. A single read needs no transaction.
func (h *CreateShipmentCommandHandler) getExisting(
	ctx context.Context,
	orderID kernel.UUID,
) (*shipment.Shipment, error) {
	return h.uowFactory.Create().ShipmentRepository().GetByOrderID(ctx, orderID)
}
