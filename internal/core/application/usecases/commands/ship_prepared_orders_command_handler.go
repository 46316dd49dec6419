package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ShipPreparedOrdersCommandHandler orchestrates the shipment batch.
// Moves every order in "preparing" status into "shipped" within a single
// transaction.
type ShipPreparedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipPreparedOrdersCommandHandler creates a handler for the shipment batch.
// Requires an OrderUoWFactory for transactional persistence.
func NewShipPreparedOrdersCommandHandler(uowFactory OrderUoWFactory) ShipPreparedOrdersCommandHandler {
	return ShipPreparedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment batch command.
// Retrieves all orders in "preparing" status and ships each one. A run with
// no prepared orders is a no-op. All updates occur within a single transaction.
func (h *ShipPreparedOrdersCommandHandler) Handle(ctx context.Context, cmd ShipPreparedOrdersCommand) error {
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
	preparedOrders, err := orderRepo.GetAllInStatus(ctx, order.Preparing)
	if err != nil {
		return err
	}

	for _, preparedOrder := range preparedOrders {
		if err = preparedOrder.Ship(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, preparedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
