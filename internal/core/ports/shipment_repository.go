package ports

import (
	"context"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
// The storage layer enforces at most one shipment per order via a unique
// constraint on orderID; Add surfaces a violation as gorm.ErrDuplicatedKey
// so callers can fall back to the existing shipment.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByOrderID retrieves the shipment for an order, or an
	// ObjectNotFound error when the order has none.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}
