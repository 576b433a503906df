package product_test

import (
	"testing"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrices(t *testing.T) product.PricePoints {
	t.Helper()
	prices, err := product.NewPricePoints(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1200),
		decimal.NewFromInt(1500),
	)
	require.NoError(t, err)
	return prices
}

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create stock-tracked product", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Harina 000", "HAR-000", "Almacén",
			testPrices(t), true, 20, 5)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "HAR-000", p.SKU())
		assert.True(t, p.TrackStock())
		assert.Equal(t, 20, p.CurrentStock())
		assert.Equal(t, 5, p.MinStock())
		assert.False(t, p.IsDeleted())
	})

	t.Run("should ignore stock counts for untracked products", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Flete", "SRV-FLETE", "Servicios",
			testPrices(t), false, -1, -1)

		require.NoError(t, err)
		assert.False(t, p.TrackStock())
		assert.False(t, p.IsBelowMinStock())
	})

	t.Run("should reject negative stock on tracked products", func(t *testing.T) {
		_, err := product.NewProduct(validID, "Harina 000", "HAR-000", "",
			testPrices(t), true, -1, 0)
		require.Error(t, err)

		_, err = product.NewProduct(validID, "Harina 000", "HAR-000", "",
			testPrices(t), true, 0, -1)
		require.Error(t, err)
	})

	t.Run("should require name and sku", func(t *testing.T) {
		_, err := product.NewProduct(validID, "", "HAR-000", "", testPrices(t), false, 0, 0)
		require.Error(t, err)

		_, err = product.NewProduct(validID, "Harina 000", "", "", testPrices(t), false, 0, 0)
		require.Error(t, err)
	})
}

func TestProduct_IsBelowMinStock(t *testing.T) {
	t.Run("should flag tracked product under threshold", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Azúcar", "AZU-1", "",
			testPrices(t), true, 2, 5)
		require.NoError(t, err)

		assert.True(t, p.IsBelowMinStock())
	})

	t.Run("should not flag product at threshold", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Azúcar", "AZU-1", "",
			testPrices(t), true, 5, 5)
		require.NoError(t, err)

		assert.False(t, p.IsBelowMinStock())
	})
}

func TestNewPricePoints(t *testing.T) {
	t.Run("should select price by tier", func(t *testing.T) {
		prices := testPrices(t)

		assert.True(t, decimal.NewFromInt(1000).Equal(prices.For(product.TierMayor)))
		assert.True(t, decimal.NewFromInt(1200).Equal(prices.For(product.TierMinor)))
		assert.True(t, decimal.NewFromInt(1500).Equal(prices.For(product.TierFinal)))
		assert.True(t, decimal.NewFromInt(1500).Equal(prices.For(product.TierUnknown)))
	})

	t.Run("should reject negative price points", func(t *testing.T) {
		_, err := product.NewPricePoints(
			decimal.NewFromInt(-1), decimal.NewFromInt(1), decimal.NewFromInt(1))
		require.Error(t, err)
	})
}

func TestPriceTierFromString(t *testing.T) {
	assert.Equal(t, product.TierMayor, product.PriceTierFromString("MAYOR"))
	assert.Equal(t, product.TierMinor, product.PriceTierFromString("MINOR"))
	assert.Equal(t, product.TierFinal, product.PriceTierFromString("FINAL"))

	// Unspecified and unrecognized tiers stay unknown; price resolution
	// treats them as FINAL.
	assert.Equal(t, product.TierUnknown, product.PriceTierFromString(""))
	assert.Equal(t, product.TierUnknown, product.PriceTierFromString("mayoreo"))
}

func TestAdjustment(t *testing.T) {
	t.Run("should parse adjustment labels defaulting to none", func(t *testing.T) {
		assert.Equal(t, product.AdjustmentFixedPrice, product.AdjustmentTypeFromString("FIXED_PRICE"))
		assert.Equal(t, product.AdjustmentPercentageOff, product.AdjustmentTypeFromString("PERCENTAGE_OFF"))
		assert.Equal(t, product.AdjustmentPercentageMarkup, product.AdjustmentTypeFromString("PERCENTAGE_MARKUP"))
		assert.Equal(t, product.AdjustmentNone, product.AdjustmentTypeFromString(""))
		assert.Equal(t, product.AdjustmentNone, product.AdjustmentTypeFromString("DESCUENTO"))
	})

	t.Run("should treat zero value as noop for every type", func(t *testing.T) {
		for _, adjType := range []product.AdjustmentType{
			product.AdjustmentNone,
			product.AdjustmentFixedPrice,
			product.AdjustmentPercentageOff,
			product.AdjustmentPercentageMarkup,
		} {
			adj, err := product.NewAdjustment(adjType, decimal.Zero)
			require.NoError(t, err)
			assert.True(t, adj.IsNoop(), "type %s", adjType)
		}
	})

	t.Run("should not be noop with a value", func(t *testing.T) {
		adj, err := product.NewAdjustment(product.AdjustmentPercentageOff, decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.False(t, adj.IsNoop())
	})
}

func TestInsufficientStockError(t *testing.T) {
	err := product.NewInsufficientStockError("Harina 000", 2, 5)

	require.ErrorIs(t, err, product.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Harina 000")
	assert.Contains(t, err.Error(), "available 2")
	assert.Contains(t, err.Error(), "requested 5")
}
