package ports

import (
	"context"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates,
// including their ordered stops.
type RouteRepository interface {
	// Add persists a new route aggregate with its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no route has the given id.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
