package queries

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/guard"
)

var ErrGetDeliveryByIDQueryIsNotConstructed = errors.New(
	"GetDeliveryByIDQuery must be created via NewGetDeliveryByIDQuery constructor",
)

// GetDeliveryByIDQuery retrieves a single delivery by its identifier.
type GetDeliveryByIDQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByIDQuery creates a query for the given delivery id.
func NewGetDeliveryByIDQuery(deliveryID kernel.UUID) (GetDeliveryByIDQuery, error) {
	q := GetDeliveryByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDeliveryID(deliveryID); err != nil {
		return GetDeliveryByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByIDQueryIsNotConstructed)
}

// DeliveryID returns the identifier being looked up.
func (q GetDeliveryByIDQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetDeliveryByIDQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}
