package commands

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents a request to reassign an existing delivery
// to a new (route, courier, vehicle, date, manifest) combination. The update
// is an all-or-nothing replacement of the assignment, not a patch.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	routeID    kernel.UUID
	courierID  kernel.UUID
	vehicleID  kernel.UUID
	date       kernel.Date
	items      []ManifestItemRequest

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to reassign a delivery.
// Validation mirrors NewCreateDeliveryCommand.
func NewUpdateDeliveryCommand(
	deliveryID kernel.UUID,
	routeID kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	items []ManifestItemRequest,
) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(deliveryID, routeID, courierID, vehicleID),
		cmd.setDate(date),
		cmd.setItems(items),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being reassigned.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RouteID returns the new route identifier.
func (c UpdateDeliveryCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CourierID returns the new courier identifier.
func (c UpdateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// VehicleID returns the new vehicle identifier.
func (c UpdateDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Date returns the new delivery date.
func (c UpdateDeliveryCommand) Date() kernel.Date {
	return c.date
}

// Items returns the new manifest lines.
func (c UpdateDeliveryCommand) Items() []ManifestItemRequest {
	return c.items
}

func (c *UpdateDeliveryCommand) setIDs(deliveryID, routeID, courierID, vehicleID kernel.UUID) error {
	if err := errors.Join(
		deliveryID.Validate(),
		routeID.Validate(),
		courierID.Validate(),
		vehicleID.Validate(),
	); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	c.routeID = routeID
	c.courierID = courierID
	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateDeliveryCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *UpdateDeliveryCommand) setItems(items []ManifestItemRequest) error {
	if len(items) == 0 {
		return ErrManifestItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	copied := make([]ManifestItemRequest, len(items))
	copy(copied, items)

	c.items = copied
	return nil
}
