package queries

import (
	"errors"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/guard"
)

var ErrSearchDeliveriesQueryIsNotConstructed = errors.New(
	"SearchDeliveriesQuery must be created via NewSearchDeliveriesQuery constructor",
)

// SearchDeliveriesQuery retrieves deliveries matching a set of optional
// filters. Filters combine conjunctively; a nil filter is a wildcard, so the
// zero-filter query lists everything.
//
// Example:
//
//	query, err := NewSearchDeliveriesQuery(&date, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid search filters: %w", err)
//	}
//
//	handler := NewSearchDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, query)
type SearchDeliveriesQuery struct { //nolint:recvcheck //using for validation
	date      *kernel.Date
	courierID *kernel.UUID
	status    *delivery.Status

	guard guard.ConstructorGuard
}

// NewSearchDeliveriesQuery creates a search query from optional filters.
// Every supplied filter value must be valid; nil means "any".
func NewSearchDeliveriesQuery(
	date *kernel.Date,
	courierID *kernel.UUID,
	status *delivery.Status,
) (SearchDeliveriesQuery, error) {
	q := SearchDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setFilters(date, courierID, status); err != nil {
		return SearchDeliveriesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrSearchDeliveriesQueryIsNotConstructed)
}

// Date returns the date filter, or nil for any date.
func (q SearchDeliveriesQuery) Date() *kernel.Date {
	return q.date
}

// CourierID returns the courier filter, or nil for any courier.
func (q SearchDeliveriesQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// Status returns the status filter, or nil for any status.
func (q SearchDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

func (q *SearchDeliveriesQuery) setFilters(
	date *kernel.Date,
	courierID *kernel.UUID,
	status *delivery.Status,
) error {
	if date != nil {
		if err := date.Validate(); err != nil {
			return err
		}
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.date = date
	q.courierID = courierID
	q.status = status
	return nil
}
