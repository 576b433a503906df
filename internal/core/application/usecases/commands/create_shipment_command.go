package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to hand an order to a courier.
// Creation is idempotent: repeating it for the same order yields the
// already-existing shipment instead of a second one.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	orderID    kernel.UUID
	provider   string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to ship the given order.
// Provider may be empty; the aggregate falls back to its default courier.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	provider string,
) (CreateShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), orderID.Validate()); err != nil {
		return CreateShipmentCommand{}, err
	}
	return CreateShipmentCommand{
		shipmentID: shipmentID,
		orderID:    orderID,
		provider:   provider,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier a newly created shipment will carry.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Provider returns the requested courier label, possibly empty.
func (c CreateShipmentCommand) Provider() string {
	return c.provider
}
