package services_test

import (
	"testing"
	"time"

	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T, startHour, startMin, endHour, endMin int) kernel.TimeWindow {
	t.Helper()
	start, err := kernel.NewTimeOfDay(startHour, startMin)
	require.NoError(t, err)
	end, err := kernel.NewTimeOfDay(endHour, endMin)
	require.NoError(t, err)
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func testManifest(t *testing.T, weight, volume int) route.Manifest {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Parcel", weight, volume)
	require.NoError(t, err)
	item, err := route.NewManifestItem(p, 1)
	require.NoError(t, err)
	m, err := route.NewManifest([]route.ManifestItem{item})
	require.NoError(t, err)
	return m
}

func testRoute(t *testing.T, name string, window kernel.TimeWindow) *route.Route {
	t.Helper()
	stop, err := route.NewStop(kernel.NewUUID(), 0, "1 Depot Street")
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), name, window, []*route.Stop{stop})
	require.NoError(t, err)
	return r
}

func testCourier(t *testing.T, name string) *courier.Courier {
	t.Helper()
	return testCourierWithShift(t, name, testWindow(t, 0, 0, 23, 59))
}

func testCourierWithShift(t *testing.T, name string, shift kernel.TimeWindow) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), name, shift)
	require.NoError(t, err)
	return c
}

func testVehicle(t *testing.T, plate string, maxWeight, maxVolume int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate, maxWeight, maxVolume)
	require.NoError(t, err)
	return v
}

func testDelivery(
	t *testing.T,
	courierID, vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), courierID, vehicleID, date, window, 10, 10)
	require.NoError(t, err)
	return d
}

func testDate() kernel.Date {
	return kernel.NewDate(2025, time.January, 30)
}
