// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
// The shift is flattened to minute offsets from midnight.
type CourierDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	ShiftStart int `gorm:"type:smallint"`
	ShiftEnd   int `gorm:"type:smallint"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		ShiftStart: aggregate.Shift().Start().MinutesFromMidnight(),
		ShiftEnd:   aggregate.Shift().End().MinutesFromMidnight(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	start, err := kernel.TimeOfDayFromMinutes(dto.ShiftStart)
	if err != nil {
		return nil, err
	}
	end, err := kernel.TimeOfDayFromMinutes(dto.ShiftEnd)
	if err != nil {
		return nil, err
	}
	shift, err := kernel.NewTimeWindow(start, end)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, shift)
}
