// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the fulfillment side of the order lifecycle.
//
// # Available Jobs
//
// 1. OrderShipmentJob - Runs every five seconds to ship orders that finished preparing
// 2. DeliveryCompletionJob - Runs every five seconds to complete deliveries of shipped orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shipOrdersHandler, completeDeliveriesHandler, logger)
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
// Both jobs use the cron expression "*/5 * * * * *", running every five seconds.
// A run that finds no orders in the relevant status is a no-op.
//
// # Error Handling
//
// Handler errors are logged and the job keeps its schedule; failed job starts
// stop any already running jobs.
package jobs
