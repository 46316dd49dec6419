package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderShipmentJob manages the scheduled shipment of prepared orders.
// Runs every five seconds to move orders from Preparing to Shipped.
type OrderShipmentJob struct {
	handler commands.ShipPreparedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderShipmentJob creates a new job for shipping prepared orders.
func NewOrderShipmentJob(handler commands.ShipPreparedOrdersCommandHandler, logger *slog.Logger) *OrderShipmentJob {
	return &OrderShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_shipment_job"),
	}
}

// Start begins the order shipment job to run every five seconds.
func (j *OrderShipmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewShipPreparedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order shipment job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order shipment job started (running every five seconds)")
	return nil
}

// Stop stops the order shipment job.
func (j *OrderShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order shipment job stopped")
}
