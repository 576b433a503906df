package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and releases the stock of every
// line item. The status flip and the stock releases run in one transaction;
// cancellation is the only path that returns reserved stock to inventory, so
// a partial release must never survive a failed cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditLog
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, audit ports.AuditLog) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the cancellation command. Only pre-dispatch orders can be
// cancelled; the aggregate rejects the transition otherwise.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	productRepo := uow.ProductRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	for _, item := range o.Items() {
		if err = productRepo.ReleaseStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"order.cancelled",
		fmt.Sprintf("order %s cancelled, stock released", o.Number()),
		"orders",
	)

	return nil
}
