package productrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves catalog changes to an existing product. Stock columns are
// excluded; ReserveStock and ReleaseStock are the only writers there.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "SKU", "Category", "WholesalePrice", "RetailMinorPrice", "RetailFinalPrice",
			"TrackStock", "MinStock", "Deleted").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the products for the given identifiers in one fetch.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// ReserveStock decrements a tracked product's stock by quantity in one
// conditional UPDATE. The WHERE clause carries the availability check, so
// two concurrent reservations can never both pass it; the loser's update
// matches zero rows and the follow-up read classifies the failure.
func (r *GormProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND track_stock AND current_stock >= ?", id.Bytes(), quantity).
		UpdateColumn("current_stock", gorm.Expr("current_stock - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		var level int
		err := r.db.WithContext(ctx).Model(&ProductDTO{}).
			Where("id = ?", id.Bytes()).
			Pluck("current_stock", &level).Error
		if err != nil {
			return 0, err
		}
		return level, nil
	}

	p, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if !p.TrackStock() {
		return p.CurrentStock(), nil
	}

	return 0, product.NewInsufficientStockError(p.Name(), p.CurrentStock(), quantity)
}

// ReleaseStock increments a tracked product's stock by quantity. Untracked
// products are a no-op.
func (r *GormProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND track_stock", id.Bytes()).
		UpdateColumn("current_stock", gorm.Expr("current_stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Either the product does not exist or it is untracked.
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// GetBelowMinStock retrieves tracked, non-deleted products under their
// reorder threshold.
func (r *GormProductRepository) GetBelowMinStock(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "track_stock AND NOT deleted AND current_stock < min_stock").Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
