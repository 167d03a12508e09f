// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly with
// raw SQL for performance; results are flat read models, not aggregates.
package queries

import (
	"database/sql"
	"time"

	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryReadModel is the flat projection of a delivery row returned by the
// delivery queries.
type DeliveryReadModel struct {
	ID          kernel.UUID
	RouteID     kernel.UUID
	CourierID   kernel.UUID
	VehicleID   kernel.UUID
	Date        kernel.Date
	WindowStart kernel.TimeOfDay
	WindowEnd   kernel.TimeOfDay
	TotalWeight int
	TotalVolume int
	Status      string
}

// scanDeliveryRow converts one database row into a read model. The column
// order must match the SELECT lists of the delivery queries.
func scanDeliveryRow(rows *sql.Rows) (DeliveryReadModel, error) {
	var (
		id, routeID, courierID, vehicleID uuid.UUID
		deliveryDate                      time.Time
		windowStart, windowEnd            int
		totalWeight, totalVolume          int
		status                            string
	)

	if err := rows.Scan(
		&id,
		&routeID,
		&courierID,
		&vehicleID,
		&deliveryDate,
		&windowStart,
		&windowEnd,
		&totalWeight,
		&totalVolume,
		&status,
	); err != nil {
		return DeliveryReadModel{}, err
	}

	return buildDeliveryReadModel(
		id, routeID, courierID, vehicleID,
		deliveryDate, windowStart, windowEnd, totalWeight, totalVolume, status)
}

func buildDeliveryReadModel(
	id, routeID, courierID, vehicleID uuid.UUID,
	deliveryDate time.Time,
	windowStart, windowEnd, totalWeight, totalVolume int,
	status string,
) (DeliveryReadModel, error) {
	model := DeliveryReadModel{
		Date:        kernel.DateFromTime(deliveryDate),
		TotalWeight: totalWeight,
		TotalVolume: totalVolume,
		Status:      status,
	}

	var err error
	if model.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryReadModel{}, err
	}
	if model.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
		return DeliveryReadModel{}, err
	}
	if model.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
		return DeliveryReadModel{}, err
	}
	if model.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return DeliveryReadModel{}, err
	}
	if model.WindowStart, err = kernel.TimeOfDayFromMinutes(windowStart); err != nil {
		return DeliveryReadModel{}, err
	}
	if model.WindowEnd, err = kernel.TimeOfDayFromMinutes(windowEnd); err != nil {
		return DeliveryReadModel{}, err
	}

	return model, nil
}
