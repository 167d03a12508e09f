// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery planning service.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Runs on a configurable schedule (once a minute by
// default) to start Created deliveries whose date has passed or whose window
// opened, moving them into InProgress.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(startDueDeliveriesHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a seconds column, e.g.
// "0 * * * * *" for once a minute. The schedule comes from configuration so
// deployments can tune dispatch latency against database load.
//
// # Error Handling
//
// - Dispatch job logs all errors as they indicate system issues
// - A delivery that cannot transition is skipped, not retried in a tight loop
// - Failed job starts will stop any already running jobs
package jobs
