package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchDeliveriesQueryHandler retrieves delivery read models from the
// database. Filters are applied in SQL; the result is ordered by delivery
// date then id so repeated identical searches return identical output.
//
// Example:
//
//	handler := NewSearchDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("search failed: %v", err)
//	    return err
//	}
//	fmt.Printf("found %d deliveries\n", len(deliveries))
type SearchDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewSearchDeliveriesQueryHandler creates a handler for delivery searches.
// Requires a GORM database connection for query execution.
func NewSearchDeliveriesQueryHandler(db *gorm.DB) SearchDeliveriesQueryHandler {
	return SearchDeliveriesQueryHandler{db: db}
}

// Handle executes the search. The query is read-only and mutates nothing;
// running the same search twice against an unchanged database yields the same
// rows in the same order.
func (h SearchDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query SearchDeliveriesQuery,
) ([]DeliveryReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Date() != nil {
		sql += " AND delivery_date = ?"
		args = append(args, query.Date().Time())
	}
	if query.CourierID() != nil {
		sql += " AND courier_id = ?"
		args = append(args, query.CourierID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}

	sql += " ORDER BY delivery_date, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryReadModel, 0)
	for rows.Next() {
		model, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, model)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
