package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderShipmentJob      *OrderShipmentJob
	deliveryCompletionJob *DeliveryCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	shipOrdersHandler commands.ShipPreparedOrdersCommandHandler,
	completeDeliveriesHandler commands.CompleteDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderShipmentJob:      NewOrderShipmentJob(shipOrdersHandler, logger),
		deliveryCompletionJob: NewDeliveryCompletionJob(completeDeliveriesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order shipment job: %w", err)
	}

	if err := jm.deliveryCompletionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderShipmentJob.Stop()
		return fmt.Errorf("failed to start delivery completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderShipmentJob.Stop()
	jm.deliveryCompletionJob.Stop()
}
