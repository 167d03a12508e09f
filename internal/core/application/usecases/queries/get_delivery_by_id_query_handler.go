package queries

import (
	"context"

	"couriermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByIDQueryHandler retrieves one delivery read model by id.
// A missing delivery is a distinct not-found error, never an empty result,
// so the HTTP layer can map it to 404 instead of 200 with a hole in it.
type GetDeliveryByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByIDQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryByIDQueryHandler(db *gorm.DB) GetDeliveryByIDQueryHandler {
	return GetDeliveryByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no
// delivery carries the requested id.
func (h GetDeliveryByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByIDQuery,
) (DeliveryReadModel, error) {
	if err := query.Validate(); err != nil {
		return DeliveryReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			route_id,
			courier_id,
			vehicle_id,
			delivery_date,
			window_start,
			window_end,
			total_weight,
			total_volume,
			status
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryReadModel{}, err
		}
		return DeliveryReadModel{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID())
	}

	model, err := scanDeliveryRow(rows)
	if err != nil {
		return DeliveryReadModel{}, err
	}

	return model, rows.Err()
}
