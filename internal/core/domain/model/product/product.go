package product

import (
	"errors"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock classifies stock-reservation failures.
	// Use errors.Is against this sentinel; the concrete value is an
	// *InsufficientStockError carrying product name and counts.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError is returned when a reservation asks for more units
// than a stock-tracked product has available. The message embeds the product
// name and the available/requested counts, matching what sellers see.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productName string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{ProductName: productName, Available: available, Requested: requested}
}

// Product is the catalog aggregate. It carries the three price points used by
// tiered pricing and the stock-tracking state the Stock Ledger enforces.
//
// Invariants:
//   - Must have a valid unique identifier, a name and a SKU
//   - All price points are non-negative
//   - If stock is tracked, currentStock never goes below zero; the only
//     decrement path is an order-creation reservation and the only increment
//     path is an order-cancellation release
//   - Can only be created through NewProduct or RestoreProduct
//
// Stock mutation is deliberately absent from this aggregate: the
// check-and-decrement must be a single atomic read-modify-write at the
// storage layer, so reserve/release live on the repository port and run
// inside the order transaction.
type Product struct {
	id           kernel.UUID
	name         string
	sku          string
	category     string
	prices       PricePoints
	trackStock   bool
	currentStock int
	minStock     int
	deleted      bool

	isConstructed bool
}

// NewProduct creates a new Product with validation.
//
// For stock-tracked products currentStock and minStock must be non-negative.
// Untracked products ignore stock counts entirely.
func NewProduct(
	id kernel.UUID,
	name string,
	sku string,
	category string,
	prices PricePoints,
	trackStock bool,
	currentStock int,
	minStock int,
) (*Product, error) {
	p := &Product{
		category:      category,
		prices:        prices,
		trackStock:    trackStock,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setStock(currentStock, minStock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// soft-delete flag. Validation mirrors NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	sku string,
	category string,
	prices PricePoints,
	trackStock bool,
	currentStock int,
	minStock int,
	deleted bool,
) (*Product, error) {
	p, err := NewProduct(id, name, sku, category, prices, trackStock, currentStock, minStock)
	if err != nil {
		return nil, err
	}
	p.deleted = deleted
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// SKU returns the product code.
func (p *Product) SKU() string {
	return p.sku
}

// Category returns the catalog category label.
func (p *Product) Category() string {
	return p.category
}

// Prices returns the product's three price points.
func (p *Product) Prices() PricePoints {
	return p.prices
}

// TrackStock reports whether the Stock Ledger is authoritative for this product.
func (p *Product) TrackStock() bool {
	return p.trackStock
}

// CurrentStock returns the on-hand count as of the last load.
// Only meaningful when TrackStock is true.
func (p *Product) CurrentStock() int {
	return p.currentStock
}

// MinStock returns the reorder threshold.
func (p *Product) MinStock() int {
	return p.minStock
}

// IsDeleted reports the soft-delete flag.
func (p *Product) IsDeleted() bool {
	return p.deleted
}

// IsBelowMinStock reports whether a tracked product has fallen under its
// reorder threshold.
func (p *Product) IsBelowMinStock() bool {
	return p.trackStock && p.currentStock < p.minStock
}

// Delete marks the product as soft-deleted. Deleted products stay referable
// from historical order lines.
func (p *Product) Delete() {
	p.deleted = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setStock(currentStock, minStock int) error {
	if !p.trackStock {
		return nil
	}
	if currentStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentStock",
			fmt.Errorf("%d is negative", currentStock))
	}
	if minStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minStock",
			fmt.Errorf("%d is negative", minStock))
	}
	p.currentStock = currentStock
	p.minStock = minStock
	return nil
}
