package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// orderNumberSequence is the Postgres sequence that backs display order
// numbers. Sequence values survive rollbacks, so numbers are never reused
// even when the surrounding order transaction fails.
const orderNumberSequence = "order_numbers"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items in one write.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves lifecycle changes to an existing order. Line items are
// immutable and deliberately not touched; nullable columns (route, code,
// delivered timestamp) are written through a map so clearing them works.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"route_id":      dto.RouteID,
			"delivery_code": dto.DeliveryCode,
			"requires_code": dto.RequiresCode,
			"delivered_at":  dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRouteID retrieves every order assigned to the given route.
func (r *GormOrderRepository) GetAllByRouteID(ctx context.Context, routeID kernel.UUID) ([]*order.Order, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "route_id = ?", routeID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextNumber draws the next display order number from the storage sequence.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (string, error) {
	var seq int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval(?)", orderNumberSequence).Scan(&seq).Error
	if err != nil {
		return "", err
	}

	return order.FormatNumber(seq), nil
}
