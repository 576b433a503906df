// Package ports defines the contracts between the application core and
// infrastructure: per-aggregate repositories, the unit-of-work transaction
// boundary, and the external collaborators (audit sink, notifier, identity).
package ports

import (
	"context"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates,
// including the Stock Ledger operations.
//
// ReserveStock and ReleaseStock are the only stock mutation paths in the
// system. Both must execute inside the same transaction as the order write
// that triggers them, and the reservation's check-and-decrement must be a
// single atomic read-modify-write at the storage layer: two concurrent
// reservations against the same product must never both pass the stock check.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// Stock counts are excluded; only Reserve/ReleaseStock touch them.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products for the given identifiers in one fetch.
	// Missing identifiers are simply absent from the result; the caller
	// decides whether absence is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// ReserveStock atomically decrements a tracked product's stock by
	// quantity and returns the resulting level. Fails with
	// *product.InsufficientStockError when fewer than quantity units are
	// available. Untracked products are a successful no-op.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) (int, error)

	// ReleaseStock increments a tracked product's stock by quantity.
	// Used on order cancellation; no upper bound is enforced.
	// Untracked products are a no-op.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error

	// GetBelowMinStock retrieves tracked, non-deleted products whose current
	// stock has fallen under their reorder threshold.
	GetBelowMinStock(ctx context.Context) ([]*product.Product, error)
}
