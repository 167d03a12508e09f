// Package routerepo provides data transfer objects and mapping functions
// for route persistence.
package routerepo

import (
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting routes.
// The service window is flattened to minute offsets from midnight and
// stops are stored in a child table keyed by route id.
type RouteDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	WindowStart int       `gorm:"type:smallint"`
	WindowEnd   int       `gorm:"type:smallint"`
	Stops       []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// StopDTO represents the database structure for persisting route stops.
type StopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;index"`
	Sequence int
	Address  string
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// TableName specifies the database table name for stop entities.
func (StopDTO) TableName() string {
	return "stops"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	stops := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, stop := range aggregate.Stops() {
		stops = append(stops, StopDTO{
			ID:       stop.ID().Bytes(),
			RouteID:  aggregate.ID().Bytes(),
			Sequence: stop.Sequence(),
			Address:  stop.Address(),
		})
	}

	return RouteDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		WindowStart: aggregate.Window().Start().MinutesFromMidnight(),
		WindowEnd:   aggregate.Window().End().MinutesFromMidnight(),
		Stops:       stops,
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stopID, err := kernel.UUIDFromBytes(stopDTO.ID[:])
		if err != nil {
			return nil, err
		}
		stop, err := route.RestoreStop(stopID, stopDTO.Sequence, stopDTO.Address)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(id, dto.Name, window, stops)
}
