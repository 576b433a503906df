package cashshift_test

import (
	"testing"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShift(t *testing.T) {
	t.Run("should open shift with counted amount", func(t *testing.T) {
		id := kernel.NewUUID()
		openedBy := kernel.NewUUID()

		s, err := cashshift.NewShift(id, openedBy, decimal.NewFromInt(5000), time.Now())

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.OpenedBy().IsEqual(openedBy))
		assert.Equal(t, cashshift.Open, s.Status())
		assert.Nil(t, s.ClosedAt())
		assert.Nil(t, s.Variance())
	})

	t.Run("should allow zero opening amount", func(t *testing.T) {
		s, err := cashshift.NewShift(kernel.NewUUID(), kernel.NewUUID(), decimal.Zero, time.Now())

		require.NoError(t, err)
		assert.True(t, s.OpeningAmount().IsZero())
	})

	t.Run("should reject negative opening amount", func(t *testing.T) {
		s, err := cashshift.NewShift(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(-1), time.Now())

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShift_Close(t *testing.T) {
	openShift := func(t *testing.T) *cashshift.Shift {
		t.Helper()
		s, err := cashshift.NewShift(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(1000), time.Now())
		require.NoError(t, err)
		return s
	}

	t.Run("should record declared, system and variance", func(t *testing.T) {
		s := openShift(t)

		err := s.Close(decimal.NewFromInt(1450), decimal.NewFromInt(1500), time.Now())

		require.NoError(t, err)
		assert.Equal(t, cashshift.Closed, s.Status())
		require.NotNil(t, s.ClosingAmount())
		assert.True(t, decimal.NewFromInt(1450).Equal(*s.ClosingAmount()))
		require.NotNil(t, s.SystemAmount())
		assert.True(t, decimal.NewFromInt(1500).Equal(*s.SystemAmount()))
		require.NotNil(t, s.Variance())
		assert.True(t, decimal.NewFromInt(-50).Equal(*s.Variance()))
		assert.NotNil(t, s.ClosedAt())
	})

	t.Run("should refuse double close", func(t *testing.T) {
		s := openShift(t)
		require.NoError(t, s.Close(decimal.NewFromInt(1000), decimal.NewFromInt(1000), time.Now()))

		err := s.Close(decimal.NewFromInt(1000), decimal.NewFromInt(1000), time.Now())

		require.ErrorIs(t, err, cashshift.ErrShiftAlreadyClosed)
	})

	t.Run("should reject negative declared amount", func(t *testing.T) {
		s := openShift(t)

		err := s.Close(decimal.NewFromInt(-10), decimal.NewFromInt(1000), time.Now())

		require.Error(t, err)
		assert.Equal(t, cashshift.Open, s.Status())
	})
}

func TestNewTransaction(t *testing.T) {
	shiftID := kernel.NewUUID()

	t.Run("should record signed movement", func(t *testing.T) {
		tx, err := cashshift.NewTransaction(
			kernel.NewUUID(), shiftID, cashshift.Out,
			decimal.NewFromInt(300), "proveedores", "pago reparto", time.Now())

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.True(t, tx.ShiftID().IsEqual(shiftID))
		assert.Equal(t, cashshift.Out, tx.Direction())
		assert.True(t, decimal.NewFromInt(300).Equal(tx.Amount()))
		assert.True(t, decimal.NewFromInt(-300).Equal(tx.SignedAmount()))
	})

	t.Run("should leave inflow amount positive", func(t *testing.T) {
		tx, err := cashshift.NewTransaction(
			kernel.NewUUID(), shiftID, cashshift.In,
			decimal.NewFromInt(300), "ventas", "", time.Now())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(tx.SignedAmount()))
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := cashshift.NewTransaction(
				kernel.NewUUID(), shiftID, cashshift.In, amount, "", "", time.Now())
			require.Error(t, err)
		}
	})

	t.Run("should reject unknown direction", func(t *testing.T) {
		_, err := cashshift.NewTransaction(
			kernel.NewUUID(), shiftID, cashshift.DirectionUnknown,
			decimal.NewFromInt(10), "", "", time.Now())
		require.Error(t, err)
	})
}

func TestDirectionFromString(t *testing.T) {
	in, err := cashshift.DirectionFromString("IN")
	require.NoError(t, err)
	assert.Equal(t, cashshift.In, in)

	out, err := cashshift.DirectionFromString("OUT")
	require.NoError(t, err)
	assert.Equal(t, cashshift.Out, out)

	_, err = cashshift.DirectionFromString("entrada")
	require.Error(t, err)
}
