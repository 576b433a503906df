package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// DeliverOrderCommandHandler confirms delivery of a route-assigned order.
// When the order requires a code, the presented code must match exactly or
// the transition fails with order.ErrInvalidDeliveryCode and nothing changes.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewDeliverOrderCommandHandler creates a handler for delivery confirmation.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, audit ports.AuditLog) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the delivery confirmation command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Deliver(cmd.Code(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"order.delivered",
		fmt.Sprintf("order %s delivered", o.Number()),
		"orders",
	)

	return nil
}
