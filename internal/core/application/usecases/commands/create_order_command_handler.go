package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/services"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// CreateOrderCommandHandler is the order transaction coordinator. It turns a
// validated cart into a persisted order in one atomic unit: every line's
// stock reservation, the order row and its items commit together or not at
// all. A reservation failure on the third line rolls back the first two;
// no partial stock mutation ever survives.
//
// Side effects outside the transaction (the audit record) run only after a
// successful commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.PricingResolver
	audit      ports.AuditLog
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	resolver services.PricingResolver,
	audit ports.AuditLog,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		audit:      audit,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Algorithm, inside one transaction:
//  1. Load all referenced products in one fetch.
//  2. Per line, in input order: resolve the product (missing or deleted
//     fails the whole operation), reserve its stock, resolve the unit price
//     and build the immutable order item.
//  3. Draw the next order number from the storage sequence.
//  4. Persist the order with its items in Confirmed status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	products, err := h.loadProducts(ctx, productRepo, cmd.Lines())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, ok := products[line.ProductID().String()]
		if !ok || p.IsDeleted() {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID().String())
		}

		if _, err = productRepo.ReserveStock(ctx, p.ID(), line.Quantity()); err != nil {
			return nil, err
		}

		basePrice := p.Prices().For(cmd.Tier())
		unitPrice := h.resolver.Resolve(p.Prices(), cmd.Tier(), line.Adjustment())

		item, itemErr := order.NewItem(
			p.ID(), p.Name(), line.Quantity(), cmd.Tier(), basePrice, line.Adjustment(), unitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.CustomerID(),
		cmd.SalespersonID(),
		cmd.Tier(),
		cmd.ShippingAddress(),
		items,
		cmd.FeePercent(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.Record(ctx,
		"order.created",
		fmt.Sprintf("order %s for customer %s, total %s", newOrder.Number(), newOrder.CustomerID(), newOrder.Total()),
		"orders",
	)

	return newOrder, nil
}

func (h *CreateOrderCommandHandler) loadProducts(
	ctx context.Context,
	repo ports.ProductRepository,
	lines []OrderLine,
) (map[string]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		key := line.ProductID().String()
		if !seen[key] {
			seen[key] = true
			ids = append(ids, line.ProductID())
		}
	}

	loaded, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*product.Product, len(loaded))
	for _, p := range loaded {
		products[p.ID().String()] = p
	}
	return products, nil
}
