package ports

import (
	"context"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no vehicle has the given id.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves every vehicle. The result is the candidate pool the
	// assignment planner draws from.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
