package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrToggleOrderInRouteCommandIsNotConstructed = errors.New(
	"ToggleOrderInRouteCommand must be created via NewToggleOrderInRouteCommand constructor",
)

// ToggleOrderInRouteCommand moves an order onto a route or takes it back off.
// A nil route removes the order from its current route.
type ToggleOrderInRouteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	routeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleOrderInRouteCommand creates a command to assign an order to the
// given route, or to unassign it when routeID is nil.
func NewToggleOrderInRouteCommand(orderID kernel.UUID, routeID *kernel.UUID) (ToggleOrderInRouteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ToggleOrderInRouteCommand{}, err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return ToggleOrderInRouteCommand{}, err
		}
	}
	return ToggleOrderInRouteCommand{
		orderID: orderID,
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleOrderInRouteCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderInRouteCommandIsNotConstructed)
}

// OrderID returns the order being toggled.
func (c ToggleOrderInRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RouteID returns the target route, nil for removal.
func (c ToggleOrderInRouteCommand) RouteID() *kernel.UUID {
	return c.routeID
}
