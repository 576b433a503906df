package ports

import (
	"context"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items in one write.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes to an existing order. Line items
	// are immutable and never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByRouteID retrieves every order assigned to the given route.
	GetAllByRouteID(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error)

	// NextNumber draws the next display order number from the
	// storage-generated sequence. Sequence values are never reused, so
	// numbers stay unique under concurrent order creation.
	NextNumber(ctx context.Context) (string, error)
}
