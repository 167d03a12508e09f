package delivery_test

import (
	"testing"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) kernel.TimeWindow {
	t.Helper()
	start, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	end, err := kernel.NewTimeOfDay(10, 0)
	require.NoError(t, err)
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewDate(2025, time.January, 30), testWindow(t), 250, 400)
	require.NoError(t, err)
	return d
}

func TestNewDelivery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	routeID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	date := kernel.NewDate(2025, time.January, 30)
	window := testWindow(t)

	d, err := delivery.NewDelivery(id, routeID, courierID, vehicleID, date, window, 250, 400)

	require.NoError(t, err)
	assert.True(t, d.ID().IsEqual(id))
	assert.True(t, d.RouteID().IsEqual(routeID))
	assert.True(t, d.CourierID().IsEqual(courierID))
	assert.True(t, d.VehicleID().IsEqual(vehicleID))
	assert.True(t, d.Date().IsEqual(date))
	assert.True(t, d.Window().IsEqual(window))
	assert.Equal(t, 250, d.TotalWeight())
	assert.Equal(t, 400, d.TotalVolume())
	assert.Equal(t, delivery.Created, d.Status())
}

func TestNewDelivery_InvalidInput(t *testing.T) {
	date := kernel.NewDate(2025, time.January, 30)
	window := testWindow(t)

	t.Run("zero-value references", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), date, window, 1, 1)
		require.Error(t, err)
	})

	t.Run("non-positive load", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), date, window, 0, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrTotalWeightIsInvalid)

		_, err = delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), date, window, 1, -5)
		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrTotalVolumeIsInvalid)
	})
}

func TestDelivery_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Start())
		assert.Equal(t, delivery.InProgress, d.Status())

		require.NoError(t, d.Complete())
		assert.Equal(t, delivery.Completed, d.Status())
	})

	t.Run("cancel from created", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("cancel from in progress", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Start())

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("cannot skip in progress", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Complete()

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrInvalidStatusTransition)
		assert.Equal(t, delivery.Created, d.Status())
	})

	t.Run("terminal states are final", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel())

		require.ErrorIs(t, d.Start(), delivery.ErrInvalidStatusTransition)
		require.ErrorIs(t, d.Complete(), delivery.ErrInvalidStatusTransition)
	})
}

func TestDelivery_Reassign(t *testing.T) {
	t.Run("allowed in created status", func(t *testing.T) {
		d := newTestDelivery(t)
		newDate := kernel.NewDate(2025, time.February, 2)
		newCourier := kernel.NewUUID()

		err := d.Reassign(
			d.RouteID(), newCourier, d.VehicleID(), newDate, d.Window(), 300, 500)

		require.NoError(t, err)
		assert.True(t, d.CourierID().IsEqual(newCourier))
		assert.True(t, d.Date().IsEqual(newDate))
		assert.Equal(t, 300, d.TotalWeight())
		assert.Equal(t, 500, d.TotalVolume())
	})

	t.Run("denied once started", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Start())

		err := d.Reassign(
			d.RouteID(), kernel.NewUUID(), d.VehicleID(), d.Date(), d.Window(), 300, 500)

		require.ErrorIs(t, err, delivery.ErrDeliveryIsNotEditable)
	})
}

func TestRestoreDelivery_PreservesStatus(t *testing.T) {
	id := kernel.NewUUID()

	d, err := delivery.RestoreDelivery(
		id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewDate(2025, time.January, 30), testWindow(t), 100, 100, delivery.InProgress)

	require.NoError(t, err)
	assert.Equal(t, delivery.InProgress, d.Status())
	assert.True(t, d.ID().IsEqual(id))
}

func TestRestoreDelivery_RejectsInvalidStatus(t *testing.T) {
	_, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewDate(2025, time.January, 30), testWindow(t), 100, 100, delivery.Unknown)

	require.Error(t, err)
}

func TestDelivery_ZeroValueIsInvalid(t *testing.T) {
	var d delivery.Delivery

	err := d.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrDeliveryIsNotConstructed)
}

func TestDelivery_IsEqual(t *testing.T) {
	d := newTestDelivery(t)
	other := newTestDelivery(t)

	assert.True(t, d.IsEqual(d))
	assert.False(t, d.IsEqual(other))
	assert.False(t, d.IsEqual(nil))
}
