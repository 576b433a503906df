package queries

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery retrieves stock-tracked products that fell under
// their reorder threshold.
type GetLowStockProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products below minimum stock.
func NewGetLowStockProductsQuery() GetLowStockProductsQuery {
	return GetLowStockProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// GetLowStockProductsQueryResponse is one low-stock product row.
type GetLowStockProductsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	SKU          string
	CurrentStock int
	MinStock     int
}
