package order

import (
	"errors"
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. It records the product, the quantity, and the
// full pricing trail: the tier and base price used, the adjustment applied,
// and the resulting unit price.
//
// Items are immutable once their parent order is created. There is no
// partial item edit; cancel-and-recreate is the only correction path.
// Subtotal is always unitPrice × quantity.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	tier        product.PriceTier
	basePrice   decimal.Decimal
	adjustment  product.Adjustment
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal

	isConstructed bool
}

// NewItem creates an order line with validation. The subtotal is derived,
// never supplied.
func NewItem(
	productID kernel.UUID,
	productName string,
	quantity int,
	tier product.PriceTier,
	basePrice decimal.Decimal,
	adjustment product.Adjustment,
	unitPrice decimal.Decimal,
) (Item, error) {
	item := Item{
		tier:          tier,
		adjustment:    adjustment,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setPrices(basePrice, unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// Tier returns the price tier the line was priced with.
func (i Item) Tier() product.PriceTier {
	return i.tier
}

// BasePrice returns the tier-selected price before adjustment.
func (i Item) BasePrice() decimal.Decimal {
	return i.basePrice
}

// Adjustment returns the per-line override applied to the base price.
func (i Item) Adjustment() product.Adjustment {
	return i.adjustment
}

// UnitPrice returns the resolved price per unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrices(basePrice, unitPrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("basePrice",
			fmt.Errorf("%s is negative", basePrice))
	}
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.basePrice = basePrice
	i.unitPrice = unitPrice
	return nil
}
