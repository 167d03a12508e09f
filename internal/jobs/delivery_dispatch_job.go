package jobs

import (
	"context"
	"log/slog"

	"couriermanagement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob manages the scheduled dispatch of due deliveries.
// Runs on a configurable schedule to move Created deliveries whose window
// has opened into InProgress.
type DeliveryDispatchJob struct {
	handler  commands.StartDueDeliveriesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryDispatchJob creates a new job for dispatching due deliveries.
// The schedule uses the six-field cron format with a seconds column.
func NewDeliveryDispatchJob(
	handler commands.StartDueDeliveriesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the delivery dispatch job on its configured schedule.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewStartDueDeliveriesCommand()

		started, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
			return
		}

		if started > 0 {
			j.logger.InfoContext(ctx, "Dispatched due deliveries", "count", started)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the delivery dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
