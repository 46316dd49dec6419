package commands

import (
	"context"
)

// ConfirmPaymentCommandHandler handles payment confirmations.
// Loads the order aggregate and advances it into "preparing" status.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
// Only orders in "payment waiting" status accept the transition; the
// aggregate rejects confirmation in any other status.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if err = existingOrder.StartPreparing(); err != nil {
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
