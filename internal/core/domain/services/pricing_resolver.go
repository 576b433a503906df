package services

import (
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// PricingResolver is a pure domain service that computes the unit price for
// an order line from a product's price points, the requested tier, and an
// optional per-line adjustment.
//
// Resolution rules:
//   - The tier selects the base price; unknown/unspecified tiers resolve as
//     the retail-final price
//   - FIXED_PRICE replaces the base price outright
//   - PERCENTAGE_OFF multiplies by (1 - value/100)
//   - PERCENTAGE_MARKUP multiplies by (1 + value/100)
//   - An adjustment whose value is zero is a no-op regardless of type
//     (legacy contract, pinned by tests)
//   - The result is clamped to a floor of zero, never negative
//
// The resolver is stateless and deterministic: identical inputs always
// produce identical output.
type PricingResolver struct{}

// NewPricingResolver creates a new PricingResolver instance.
func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

var oneHundred = decimal.NewFromInt(100)

// Resolve computes the unit price for one order line.
func (PricingResolver) Resolve(
	prices product.PricePoints,
	tier product.PriceTier,
	adjustment product.Adjustment,
) decimal.Decimal {
	base := prices.For(tier)

	if adjustment.IsNoop() {
		return clampToZero(base)
	}

	var price decimal.Decimal
	switch adjustment.Type() {
	case product.AdjustmentFixedPrice:
		price = adjustment.Value()
	case product.AdjustmentPercentageOff:
		price = base.Mul(decimal.NewFromInt(1).Sub(adjustment.Value().Div(oneHundred)))
	case product.AdjustmentPercentageMarkup:
		price = base.Mul(decimal.NewFromInt(1).Add(adjustment.Value().Div(oneHundred)))
	default:
		price = base
	}

	return clampToZero(price)
}

func clampToZero(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
