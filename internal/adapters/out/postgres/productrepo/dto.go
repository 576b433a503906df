// Package productrepo provides data transfer objects and mapping functions
// for product persistence, including the atomic stock operations the order
// transaction depends on.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
// The three price points are stored as numeric columns; stock counts only
// carry meaning when TrackStock is set.
type ProductDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	SKU              string    `gorm:"column:sku;uniqueIndex;not null"`
	Category         string
	WholesalePrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	RetailMinorPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	RetailFinalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	TrackStock       bool
	CurrentStock     int
	MinStock         int
	Deleted          bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:               p.ID().Bytes(),
		Name:             p.Name(),
		SKU:              p.SKU(),
		Category:         p.Category(),
		WholesalePrice:   p.Prices().Wholesale(),
		RetailMinorPrice: p.Prices().RetailMinor(),
		RetailFinalPrice: p.Prices().RetailFinal(),
		TrackStock:       p.TrackStock(),
		CurrentStock:     p.CurrentStock(),
		MinStock:         p.MinStock(),
		Deleted:          p.IsDeleted(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	prices, err := product.NewPricePoints(dto.WholesalePrice, dto.RetailMinorPrice, dto.RetailFinalPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.SKU,
		dto.Category,
		prices,
		dto.TrackStock,
		dto.CurrentStock,
		dto.MinStock,
		dto.Deleted,
	)
}
