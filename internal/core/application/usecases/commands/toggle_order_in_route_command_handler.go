package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// ToggleOrderInRouteCommandHandler assigns an order to a route or removes it.
// Assignment issues a fresh delivery code; removal clears the code and puts
// the order back in the confirmed status.
type ToggleOrderInRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	audit      ports.AuditLog
}

// NewToggleOrderInRouteCommandHandler creates a handler for route toggling.
func NewToggleOrderInRouteCommandHandler(
	uowFactory RouteUoWFactory,
	audit ports.AuditLog,
) ToggleOrderInRouteCommandHandler {
	return ToggleOrderInRouteCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the toggle command.
func (h *ToggleOrderInRouteCommandHandler) Handle(ctx context.Context, cmd ToggleOrderInRouteCommand) error {
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

	routeRepo := uow.RouteRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	action := "order.route_removed"
	details := fmt.Sprintf("order %s removed from route", o.Number())

	if cmd.RouteID() == nil {
		if err = o.RemoveFromRoute(); err != nil {
			return err
		}
	} else {
		r, getErr := routeRepo.Get(ctx, *cmd.RouteID())
		if getErr != nil {
			return getErr
		}

		if err = o.AssignToRoute(r.ID(), order.NewDeliveryCode()); err != nil {
			return err
		}

		action = "order.route_assigned"
		details = fmt.Sprintf("order %s assigned to route %s", o.Number(), r.Name())
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx, action, details, "routes")

	return nil
}
