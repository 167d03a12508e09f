package commands_test

import (
	"context"
	"testing"
	"time"

	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/domain/model/vehicle"
	"couriermanagement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByCourierAndDate(
	ctx context.Context, courierID kernel.UUID, date kernel.Date,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, courierID, date)
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByVehicleAndDate(
	ctx context.Context, vehicleID kernel.UUID, date kernel.Date,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, vehicleID, date)
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByDates(
	ctx context.Context, dates []kernel.Date,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, dates)
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllDue(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockPlanningUoW struct{ mock.Mock }

func (m *MockPlanningUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockPlanningUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockPlanningUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockPlanningUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockPlanningUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockPlanningUoWFactory struct{ mock.Mock }

func (m *MockPlanningUoWFactory) Create() commands.PlanningUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanningUoW)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

// Domain fixtures shared across handler tests.

func fixtureWindow(t *testing.T, startHour, endHour int) kernel.TimeWindow {
	t.Helper()
	start, err := kernel.NewTimeOfDay(startHour, 0)
	require.NoError(t, err)
	end, err := kernel.NewTimeOfDay(endHour, 0)
	require.NoError(t, err)
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func fixtureRoute(t *testing.T, id kernel.UUID) *route.Route {
	t.Helper()
	stop, err := route.NewStop(kernel.NewUUID(), 0, "Depot")
	require.NoError(t, err)
	r, err := route.NewRoute(id, "Morning loop", fixtureWindow(t, 9, 12), []*route.Stop{stop})
	require.NoError(t, err)
	return r
}

func fixtureCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "Hanna", fixtureWindow(t, 8, 20))
	require.NoError(t, err)
	return c
}

func fixtureVehicle(t *testing.T, id kernel.UUID, maxWeight, maxVolume int) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(id, "AB-123-CD", maxWeight, maxVolume)
	require.NoError(t, err)
	return v
}

func fixtureProduct(t *testing.T, id kernel.UUID, weight, volume int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "Crate", weight, volume)
	require.NoError(t, err)
	return p
}

func fixtureDate(t *testing.T, daysAhead int) kernel.Date {
	t.Helper()
	return kernel.DateFromTime(time.Now().UTC().AddDate(0, 0, daysAhead))
}

func fixtureDelivery(
	t *testing.T,
	id kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(id, kernel.NewUUID(), courierID, vehicleID, date, window, 10, 10)
	require.NoError(t, err)
	return d
}
