package commands

import (
	"context"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// AddProductCommandHandler registers a product in the catalog.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
	audit      ports.AuditLog
}

// NewAddProductCommandHandler creates a handler for product registration.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory, audit ports.AuditLog) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

// Handle processes the product registration command.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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

	p, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.SKU(),
		cmd.Category(),
		cmd.Prices(),
		cmd.TrackStock(),
		cmd.CurrentStock(),
		cmd.MinStock(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.audit.Record(ctx,
		"product.created",
		fmt.Sprintf("product %s (%s) registered", p.Name(), p.SKU()),
		"products",
	)

	return nil
}
