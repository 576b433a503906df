package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand represents the driver finishing a route. Every order
// still on the route is marked delivered without a code check.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete the given route.
func NewCompleteRouteCommand(routeID kernel.UUID) (CompleteRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return CompleteRouteCommand{}, err
	}
	return CompleteRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the route to complete.
func (c CompleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}
