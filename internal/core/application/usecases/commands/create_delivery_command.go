package commands

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrManifestItemsAreRequired = errors.New("manifest items are required")
)

// CreateDeliveryCommand represents a request to manually create a single
// delivery with an explicit (route, courier, vehicle, date) assignment. The
// candidate still passes full constraint validation before being committed.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), routeID, courierID, vehicleID, date, items)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	routeID    kernel.UUID
	courierID  kernel.UUID
	vehicleID  kernel.UUID
	date       kernel.Date
	items      []ManifestItemRequest

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to manually place one delivery.
// All identifiers must be valid, the date constructed, and at least one
// manifest item with positive quantity supplied.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	routeID kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	items []ManifestItemRequest,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(deliveryID, routeID, courierID, vehicleID),
		cmd.setDate(date),
		cmd.setItems(items),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery will be created under.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RouteID returns the requested route identifier.
func (c CreateDeliveryCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CourierID returns the requested courier identifier.
func (c CreateDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// VehicleID returns the requested vehicle identifier.
func (c CreateDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Date returns the requested delivery date.
func (c CreateDeliveryCommand) Date() kernel.Date {
	return c.date
}

// Items returns the requested manifest lines.
func (c CreateDeliveryCommand) Items() []ManifestItemRequest {
	return c.items
}

func (c *CreateDeliveryCommand) setIDs(deliveryID, routeID, courierID, vehicleID kernel.UUID) error {
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

func (c *CreateDeliveryCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *CreateDeliveryCommand) setItems(items []ManifestItemRequest) error {
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
