package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob manages the scheduled completion of shipped orders.
// Runs every five seconds to move orders from Shipped to Delivered.
type DeliveryCompletionJob struct {
	handler commands.CompleteDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing deliveries.
func NewDeliveryCompletionJob(handler commands.CompleteDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every five seconds.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every five seconds)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
