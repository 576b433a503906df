package commands

import (
	"errors"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to create a delivery route and
// put the given orders on it in one atomic operation.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	name     string
	driverID *kernel.UUID
	date     time.Time
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a delivery route.
// The driver is optional; the order list may be empty (orders can be
// toggled onto the route later).
func NewCreateRouteCommand(
	routeID kernel.UUID,
	name string,
	driverID *kernel.UUID,
	date time.Time,
	orderIDs []kernel.UUID,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		driverID: driverID,
		date:     date,
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setName(name),
		cmd.validateOrderIDs(orderIDs),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier the new route will carry.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the route's display name or number.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// DriverID returns the assigned driver, nil when unassigned.
func (c CreateRouteCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// Date returns the planned delivery date.
func (c CreateRouteCommand) Date() time.Time {
	return c.date
}

// OrderIDs returns the orders to assign to the route.
func (c CreateRouteCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c CreateRouteCommand) validateOrderIDs(orderIDs []kernel.UUID) error {
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}
