package commands

import (
	"context"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles manual delivery creation. The explicit
// assignment is treated exactly like a planner candidate: it must pass the
// constraint validator against the courier's and vehicle's other deliveries on
// the requested date before anything is persisted.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrOutsideShift):
//	    // the courier's shift does not cover the route window
//	case errors.Is(err, services.ErrTimeConflict):
//	    // the courier or vehicle is busy in that window
//	case errors.Is(err, services.ErrCapacityExceeded):
//	    // the vehicle cannot carry the manifest
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory PlanningUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for manual delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory PlanningUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. Loads the referenced aggregates,
// validates the candidate, and persists the delivery in Created status.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	manifest, err := resolveManifest(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	courierDeliveries, err := deliveryRepo.GetByCourierAndDate(ctx, cmd.CourierID(), cmd.Date())
	if err != nil {
		return err
	}
	vehicleDeliveries, err := deliveryRepo.GetByVehicleAndDate(ctx, cmd.VehicleID(), cmd.Date())
	if err != nil {
		return err
	}

	candidate := services.Candidate{
		Route:    r,
		Date:     cmd.Date(),
		Courier:  c,
		Vehicle:  v,
		Manifest: manifest,
	}
	acceptance, err := services.NewConstraintValidator().Validate(
		candidate, courierDeliveries, vehicleDeliveries)
	if err != nil {
		return err
	}

	created, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.RouteID(), cmd.CourierID(), cmd.VehicleID(),
		cmd.Date(), acceptance.Window, acceptance.TotalWeight, acceptance.TotalVolume)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
