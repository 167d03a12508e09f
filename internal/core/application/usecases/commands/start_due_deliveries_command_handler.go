package commands

import (
	"context"
	"time"
)

// StartDueDeliveriesCommandHandler advances due deliveries into progress.
// A delivery is due once the current time reaches its dispatch instant
// (window start on the delivery date). Invoked periodically by the dispatch
// job rather than by user request.
type StartDueDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDueDeliveriesCommandHandler creates a handler for the dispatch sweep.
func NewStartDueDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) StartDueDeliveriesCommandHandler {
	return StartDueDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch sweep. Every due delivery is started and
// persisted within a single transaction. Returns the number of deliveries
// moved into progress.
func (h StartDueDeliveriesCommandHandler) Handle(ctx context.Context, cmd StartDueDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	due, err := deliveryRepo.GetAllDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	started := 0
	for _, d := range due {
		if err = d.Start(); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return 0, err
		}
		started++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return started, nil
}
