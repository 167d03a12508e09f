package ports

import (
	"context"

	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no courier has the given id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier. The result is the candidate pool the
	// assignment planner draws from.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
