package commands

import (
	"context"
	"time"

	"couriermanagement/internal/core/domain/services"
)

// DeleteDeliveryCommandHandler handles delivery deletion. The same lifecycle
// gate as reassignment applies: only deliveries still in Created status and
// outside the edit cutoff can be removed.
type DeleteDeliveryCommandHandler struct {
	uowFactory     DeliveryUoWFactory
	lifecycleGuard services.LifecycleGuard
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion.
func NewDeleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	lifecycleGuard services.LifecycleGuard,
) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory:     uowFactory,
		lifecycleGuard: lifecycleGuard,
	}
}

// Handle processes the deletion command.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
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

	if err = deliveryRepo.Remove(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
