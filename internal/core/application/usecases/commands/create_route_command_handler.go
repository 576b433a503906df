package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/route"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// CreateRouteCommandHandler creates a route and assigns the requested orders
// to it in a single transaction. If any order cannot be assigned the whole
// route creation rolls back.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	audit      ports.AuditLog
}

// NewCreateRouteCommandHandler creates a handler for route planning.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory, audit ports.AuditLog) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the route creation command. Each assigned order gets a
// fresh delivery code and moves to the delivering status.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
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

	r, err := route.NewRoute(cmd.RouteID(), cmd.Name(), cmd.DriverID(), cmd.Date())
	if err != nil {
		return err
	}

	if err = routeRepo.Add(ctx, r); err != nil {
		return err
	}

	for _, orderID := range cmd.OrderIDs() {
		o, getErr := orderRepo.Get(ctx, orderID)
		if getErr != nil {
			return getErr
		}

		if err = o.AssignToRoute(r.ID(), order.NewDeliveryCode()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"route.created",
		fmt.Sprintf("route %s created with %d orders", r.Name(), len(cmd.OrderIDs())),
		"routes",
	)

	return nil
}
