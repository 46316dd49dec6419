package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Loads the order aggregate, applies the cancellation rule, and persists the
// resulting "cancelled" status.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// The aggregate itself decides whether cancellation is allowed in its current
// status; orders already shipped or delivered reject the transition.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	if err = existingOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
