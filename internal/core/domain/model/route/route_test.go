package route_test

import (
	"testing"
	"time"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create pending route", func(t *testing.T) {
		driverID := kernel.NewUUID()
		date := time.Now()

		r, err := route.NewRoute(validID, "Reparto zona norte", &driverID, date)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		assert.Equal(t, "Reparto zona norte", r.Name())
		require.NotNil(t, r.DriverID())
		assert.True(t, r.DriverID().IsEqual(driverID))
		assert.Equal(t, route.Pending, r.Status())
	})

	t.Run("should allow route without driver", func(t *testing.T) {
		r, err := route.NewRoute(validID, "Reparto sin chofer", nil, time.Now())

		require.NoError(t, err)
		assert.Nil(t, r.DriverID())
	})

	t.Run("should require a name", func(t *testing.T) {
		r, err := route.NewRoute(validID, "", nil, time.Now())

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should require a valid id", func(t *testing.T) {
		var invalid kernel.UUID
		_, err := route.NewRoute(invalid, "Reparto", nil, time.Now())
		require.Error(t, err)
	})
}

func TestRoute_Complete(t *testing.T) {
	t.Run("should complete pending route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), "Reparto", nil, time.Now())
		require.NoError(t, err)

		require.NoError(t, r.Complete())
		assert.Equal(t, route.Completed, r.Status())
	})

	t.Run("should refuse double completion", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), "Reparto", nil, time.Now())
		require.NoError(t, err)
		require.NoError(t, r.Complete())

		require.Error(t, r.Complete())
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, route.Pending.Validate())
	require.NoError(t, route.Completed.Validate())
	require.Error(t, route.StatusUnknown.Validate())
	require.Error(t, route.Status(42).Validate())
}

func TestRestoreRoute(t *testing.T) {
	r, err := route.RestoreRoute(kernel.NewUUID(), "Reparto histórico", nil,
		time.Now().AddDate(0, 0, -7), route.Completed)

	require.NoError(t, err)
	assert.Equal(t, route.Completed, r.Status())
}
