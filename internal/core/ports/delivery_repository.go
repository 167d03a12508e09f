// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries by the
// resource and date combinations the assignment engine checks against.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Remove deletes a delivery aggregate from storage.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no delivery has the given id.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByCourierAndDate retrieves the deliveries assigned to a courier on
	// a date. Cancelled deliveries are excluded: they hold no resources.
	GetByCourierAndDate(ctx context.Context, courierID kernel.UUID, date kernel.Date) ([]*delivery.Delivery, error)

	// GetByVehicleAndDate retrieves the deliveries assigned to a vehicle on
	// a date. Cancelled deliveries are excluded.
	GetByVehicleAndDate(ctx context.Context, vehicleID kernel.UUID, date kernel.Date) ([]*delivery.Delivery, error)

	// GetByDates retrieves the deliveries scheduled on any of the given
	// dates, cancelled ones excluded. The result seeds the planner's busy
	// bookkeeping before a batch generation run.
	GetByDates(ctx context.Context, dates []kernel.Date) ([]*delivery.Delivery, error)

	// GetAllDue retrieves deliveries in Created status whose dispatch time
	// (window start on the delivery date) is at or before the given moment.
	// Used by the dispatch job to move due deliveries into progress.
	GetAllDue(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)
}
