package commands

import (
	"errors"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand registers a catalog product with its price points and
// stock-tracking configuration.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	name         string
	sku          string
	category     string
	prices       product.PricePoints
	trackStock   bool
	currentStock int
	minStock     int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a product.
// Field rules live on the aggregate; the command only checks the identifier.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	sku string,
	category string,
	prices product.PricePoints,
	trackStock bool,
	currentStock int,
	minStock int,
) (AddProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return AddProductCommand{}, err
	}
	return AddProductCommand{
		productID:    productID,
		name:         name,
		sku:          sku,
		category:     category,
		prices:       prices,
		trackStock:   trackStock,
		currentStock: currentStock,
		minStock:     minStock,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the identifier the new product will carry.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// SKU returns the product code.
func (c AddProductCommand) SKU() string {
	return c.sku
}

// Category returns the catalog category label.
func (c AddProductCommand) Category() string {
	return c.category
}

// Prices returns the three price points.
func (c AddProductCommand) Prices() product.PricePoints {
	return c.prices
}

// TrackStock reports whether stock is tracked for the product.
func (c AddProductCommand) TrackStock() bool {
	return c.trackStock
}

// CurrentStock returns the initial on-hand count.
func (c AddProductCommand) CurrentStock() int {
	return c.currentStock
}

// MinStock returns the reorder threshold.
func (c AddProductCommand) MinStock() int {
	return c.minStock
}
