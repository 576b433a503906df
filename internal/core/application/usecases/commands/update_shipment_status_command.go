package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand overwrites a shipment's courier-side status.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to set a shipment's status.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	if err := errors.Join(shipmentID.Validate(), status.Validate()); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}
	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment being updated.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the new courier-side status.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}
