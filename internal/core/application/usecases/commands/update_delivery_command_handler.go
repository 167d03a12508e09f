package commands

import (
	"context"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/services"
)

// UpdateDeliveryCommandHandler handles delivery reassignment. Mutation is
// gated twice before validation even runs: the lifecycle guard rejects
// deliveries past Created status and deliveries whose edit window has closed.
// The new assignment is then validated like any candidate, with the delivery
// itself excluded from the conflict snapshots so it never collides with its
// own previous slot.
//
// Example:
//
//	handler := NewUpdateDeliveryCommandHandler(uowFactory, lifecycleGuard)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrStatusLocked):
//	    // delivery already dispatched or finished
//	case errors.Is(err, services.ErrEditWindowClosed):
//	    // too close to the delivery date
//	}
type UpdateDeliveryCommandHandler struct {
	uowFactory     PlanningUoWFactory
	lifecycleGuard services.LifecycleGuard
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery reassignment.
func NewUpdateDeliveryCommandHandler(
	uowFactory PlanningUoWFactory,
	lifecycleGuard services.LifecycleGuard,
) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory:     uowFactory,
		lifecycleGuard: lifecycleGuard,
	}
}

// Handle processes the reassignment command.
func (h UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	existing, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.lifecycleGuard.CanMutate(existing, time.Now()); err != nil {
		return err
	}

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
		candidate,
		excludeDelivery(courierDeliveries, cmd.DeliveryID()),
		excludeDelivery(vehicleDeliveries, cmd.DeliveryID()),
	)
	if err != nil {
		return err
	}

	if err = existing.Reassign(
		cmd.RouteID(), cmd.CourierID(), cmd.VehicleID(),
		cmd.Date(), acceptance.Window, acceptance.TotalWeight, acceptance.TotalVolume,
	); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// excludeDelivery filters a conflict snapshot so a delivery is never compared
// against itself.
func excludeDelivery(deliveries []*delivery.Delivery, id kernel.UUID) []*delivery.Delivery {
	filtered := make([]*delivery.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.ID().IsEqual(id) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}
