package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// CompleteRouteCommandHandler finishes a route. All orders still assigned to
// it are bulk-delivered in the same transaction, skipping the delivery code
// gate: the driver closing the route vouches for the handoffs.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	audit      ports.AuditLog
	notifier   ports.Notifier
}

// NewCompleteRouteCommandHandler creates a handler for route completion.
func NewCompleteRouteCommandHandler(
	uowFactory RouteUoWFactory,
	audit ports.AuditLog,
	notifier ports.Notifier,
) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		notifier:   notifier,
	}
}

// Handle processes the route completion command.
func (h *CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
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

	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = r.Complete(); err != nil {
		return err
	}

	orders, err := orderRepo.GetAllByRouteID(ctx, r.ID())
	if err != nil {
		return err
	}

	now := time.Now()
	delivered := 0

	for _, o := range orders {
		if o.Status().IsTerminal() {
			continue
		}

		if err = o.MarkDelivered(now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
		delivered++
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"route.completed",
		fmt.Sprintf("route %s completed, %d orders delivered", r.Name(), delivered),
		"routes",
	)
	h.notifier.Notify(ctx,
		"Ruta completada",
		fmt.Sprintf("La ruta %s finalizó con %d pedidos entregados", r.Name(), delivered),
		"routes",
	)

	return nil
}
