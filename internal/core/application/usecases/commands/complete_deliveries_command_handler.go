package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CompleteDeliveriesCommandHandler orchestrates the delivery completion batch.
// Moves every order in "shipped" status into the terminal "delivered" status
// within a single transaction.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for the delivery completion batch.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion batch command.
// Retrieves all orders in "shipped" status and completes each delivery. A run
// with no shipped orders is a no-op. All updates occur within a single transaction.
func (h *CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
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

	orderRepo := uow.OrderRepository()
	shippedOrders, err := orderRepo.GetAllInStatus(ctx, order.Shipped)
	if err != nil {
		return err
	}

	for _, shippedOrder := range shippedOrders {
		if err = shippedOrder.CompleteDelivery(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, shippedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
