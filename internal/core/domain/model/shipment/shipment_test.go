package shipment_test

import (
	"testing"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()

	t.Run("should create pending shipment with tracking code", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validOrderID, "OCA", time.Now())

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.OrderID().IsEqual(validOrderID))
		assert.Equal(t, "OCA", s.Provider())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.NotEmpty(t, s.TrackingCode())
	})

	t.Run("should default empty provider", func(t *testing.T) {
		s, err := shipment.NewShipment(validID, validOrderID, "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, shipment.DefaultProvider, s.Provider())
	})

	t.Run("should fail with invalid order reference", func(t *testing.T) {
		var invalidOrderID kernel.UUID

		s, err := shipment.NewShipment(validID, invalidOrderID, "OCA", time.Now())

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestNewTrackingCode(t *testing.T) {
	now := time.Now()
	code := shipment.NewTrackingCode(now)

	// CP + 8 digits of epoch-millis + 2 random digits + AR
	assert.Len(t, code, 14)
	assert.Equal(t, "CP", code[:2])
	assert.Equal(t, "AR", code[12:])
}

func TestShipment_UpdateStatus(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)

	t.Run("should accept defined statuses", func(t *testing.T) {
		require.NoError(t, s.UpdateStatus(shipment.InTransit))
		assert.Equal(t, shipment.InTransit, s.Status())

		require.NoError(t, s.UpdateStatus(shipment.Delivered))
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := s.UpdateStatus(shipment.StatusUnknown)
		require.Error(t, err)
		assert.Equal(t, shipment.Delivered, s.Status())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse wire labels", func(t *testing.T) {
		cases := map[string]shipment.Status{
			"PENDING":    shipment.Pending,
			"IN_TRANSIT": shipment.InTransit,
			"DELIVERED":  shipment.Delivered,
		}

		for label, expected := range cases {
			status, err := shipment.StatusFromString(label)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject free text", func(t *testing.T) {
		_, err := shipment.StatusFromString("en camino")
		require.Error(t, err)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), "CP0001234567AR", "Andreani",
			shipment.InTransit, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "CP0001234567AR", s.TrackingCode())
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("should fail without tracking code", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), "", "Andreani",
			shipment.Pending, time.Now())

		require.Error(t, err)
		assert.Nil(t, s)
	})
}
