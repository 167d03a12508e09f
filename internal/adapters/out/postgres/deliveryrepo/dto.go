// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The (courier, date) and (vehicle, date) composite indexes back
// the conflict-snapshot lookups the validator depends on.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID      uuid.UUID `gorm:"type:uuid;index"`
	CourierID    uuid.UUID `gorm:"type:uuid;index:idx_deliveries_courier_date"`
	VehicleID    uuid.UUID `gorm:"type:uuid;index:idx_deliveries_vehicle_date"`
	DeliveryDate time.Time `gorm:"type:date;index:idx_deliveries_courier_date;index:idx_deliveries_vehicle_date"`
	WindowStart  int       `gorm:"type:smallint"`
	WindowEnd    int       `gorm:"type:smallint"`
	TotalWeight  int
	TotalVolume  int
	Status       string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
// The window is flattened to minute offsets; the status to its string name.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		RouteID:      aggregate.RouteID().Bytes(),
		CourierID:    aggregate.CourierID().Bytes(),
		VehicleID:    aggregate.VehicleID().Bytes(),
		DeliveryDate: aggregate.Date().Time(),
		WindowStart:  aggregate.Window().Start().MinutesFromMidnight(),
		WindowEnd:    aggregate.Window().End().MinutesFromMidnight(),
		TotalWeight:  aggregate.TotalWeight(),
		TotalVolume:  aggregate.TotalVolume(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO back into a delivery aggregate via
// RestoreDelivery, so persisted rows go through full domain validation.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	start, err := kernel.TimeOfDayFromMinutes(dto.WindowStart)
	if err != nil {
		return nil, err
	}
	end, err := kernel.TimeOfDayFromMinutes(dto.WindowEnd)
	if err != nil {
		return nil, err
	}
	window, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, routeID, courierID, vehicleID,
		kernel.DateFromTime(dto.DeliveryDate), window,
		dto.TotalWeight, dto.TotalVolume, status)
}
