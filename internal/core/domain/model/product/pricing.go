package product

import (
	"fmt"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceTier selects which of a product's three price points applies to an
// order line.
//
// Tiers:
//   - TierMayor: wholesale price
//   - TierMinor: retail-minor price
//   - TierFinal: retail-final price (the default for unknown tiers)
type PriceTier int

const (
	// TierUnknown represents an unspecified tier. Price resolution treats it
	// as TierFinal, matching the legacy default.
	TierUnknown PriceTier = iota

	// TierMayor applies the wholesale price point.
	TierMayor

	// TierMinor applies the retail-minor price point.
	TierMinor

	// TierFinal applies the retail-final price point.
	TierFinal
)

func getPriceTierStrings() map[PriceTier]string {
	return map[PriceTier]string{
		TierUnknown: "UNKNOWN",
		TierMayor:   "MAYOR",
		TierMinor:   "MINOR",
		TierFinal:   "FINAL",
	}
}

// PriceTierFromString parses a tier label ("MAYOR", "MINOR", "FINAL").
// Unrecognized labels map to TierUnknown; resolution later defaults those
// to the final-consumer price.
func PriceTierFromString(s string) PriceTier {
	for tier, str := range getPriceTierStrings() {
		if str == s && tier != TierUnknown {
			return tier
		}
	}
	return TierUnknown
}

// String returns the tier's wire label.
func (t PriceTier) String() string {
	if s, ok := getPriceTierStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate reports whether the tier is one of the known values.
// TierUnknown is accepted because the legacy contract allows unspecified
// tiers and resolves them as TierFinal.
func (t PriceTier) Validate() error {
	if _, ok := getPriceTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("price tier is invalid",
			fmt.Errorf("%d is not a valid price tier", t))
	}
	return nil
}

// AdjustmentType identifies the kind of per-line price override.
type AdjustmentType int

const (
	// AdjustmentNone leaves the tier-selected base price untouched.
	AdjustmentNone AdjustmentType = iota

	// AdjustmentFixedPrice replaces the base price outright.
	AdjustmentFixedPrice

	// AdjustmentPercentageOff discounts the base price by value percent.
	AdjustmentPercentageOff

	// AdjustmentPercentageMarkup raises the base price by value percent.
	AdjustmentPercentageMarkup
)

func getAdjustmentTypeStrings() map[AdjustmentType]string {
	return map[AdjustmentType]string{
		AdjustmentNone:             "NONE",
		AdjustmentFixedPrice:       "FIXED_PRICE",
		AdjustmentPercentageOff:    "PERCENTAGE_OFF",
		AdjustmentPercentageMarkup: "PERCENTAGE_MARKUP",
	}
}

// AdjustmentTypeFromString parses an adjustment label. Unrecognized labels
// map to AdjustmentNone.
func AdjustmentTypeFromString(s string) AdjustmentType {
	for at, str := range getAdjustmentTypeStrings() {
		if str == s && at != AdjustmentNone {
			return at
		}
	}
	return AdjustmentNone
}

// String returns the adjustment type's wire label.
func (t AdjustmentType) String() string {
	if s, ok := getAdjustmentTypeStrings()[t]; ok {
		return s
	}
	return "NONE"
}

// Validate reports whether the adjustment type is a known value.
func (t AdjustmentType) Validate() error {
	if _, ok := getAdjustmentTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("adjustment type is invalid",
			fmt.Errorf("%d is not a valid adjustment type", t))
	}
	return nil
}

// Adjustment is a per-line price override applied after tier-based base-price
// selection. An adjustment whose value is zero is a no-op regardless of its
// type; the legacy system treated "value present but falsy" as no adjustment
// and callers depend on that.
type Adjustment struct {
	adjType AdjustmentType
	value   decimal.Decimal
}

// NewAdjustment creates an adjustment of the given type and value.
func NewAdjustment(adjType AdjustmentType, value decimal.Decimal) (Adjustment, error) {
	if err := adjType.Validate(); err != nil {
		return Adjustment{}, err
	}
	return Adjustment{adjType: adjType, value: value}, nil
}

// NoAdjustment returns the neutral adjustment.
func NoAdjustment() Adjustment {
	return Adjustment{adjType: AdjustmentNone}
}

// Type returns the adjustment kind.
func (a Adjustment) Type() AdjustmentType {
	return a.adjType
}

// Value returns the adjustment amount (a fixed price or a percentage,
// depending on Type).
func (a Adjustment) Value() decimal.Decimal {
	return a.value
}

// IsNoop reports whether applying the adjustment would leave the base price
// unchanged. True for AdjustmentNone and for any adjustment with a zero value.
func (a Adjustment) IsNoop() bool {
	return a.adjType == AdjustmentNone || a.value.IsZero()
}

// PricePoints groups a product's three base prices.
type PricePoints struct {
	wholesale   decimal.Decimal
	retailMinor decimal.Decimal
	retailFinal decimal.Decimal
}

// NewPricePoints creates the price-point set for a product.
// All three prices must be non-negative.
func NewPricePoints(wholesale, retailMinor, retailFinal decimal.Decimal) (PricePoints, error) {
	for name, price := range map[string]decimal.Decimal{
		"wholesale price":    wholesale,
		"retail minor price": retailMinor,
		"retail final price": retailFinal,
	} {
		if price.IsNegative() {
			return PricePoints{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%s is negative", price))
		}
	}
	return PricePoints{wholesale: wholesale, retailMinor: retailMinor, retailFinal: retailFinal}, nil
}

// Wholesale returns the MAYOR price point.
func (p PricePoints) Wholesale() decimal.Decimal {
	return p.wholesale
}

// RetailMinor returns the MINOR price point.
func (p PricePoints) RetailMinor() decimal.Decimal {
	return p.retailMinor
}

// RetailFinal returns the FINAL price point.
func (p PricePoints) RetailFinal() decimal.Decimal {
	return p.retailFinal
}

// For selects the base price for the given tier. Unknown tiers fall back to
// the retail-final price, preserving the legacy default.
func (p PricePoints) For(tier PriceTier) decimal.Decimal {
	switch tier {
	case TierMayor:
		return p.wholesale
	case TierMinor:
		return p.retailMinor
	default:
		return p.retailFinal
	}
}
