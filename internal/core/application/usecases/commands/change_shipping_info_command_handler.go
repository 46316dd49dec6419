package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ChangeShippingInfoCommandHandler handles shipping destination changes.
// Loads the order aggregate and replaces its shipping info when the order
// is still in a changeable status.
type ChangeShippingInfoCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeShippingInfoCommandHandler creates a handler for shipping info changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeShippingInfoCommandHandler(uowFactory OrderUoWFactory) ChangeShippingInfoCommandHandler {
	return ChangeShippingInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping info change command.
// The aggregate rejects the change once the order has been shipped.
func (h *ChangeShippingInfoCommandHandler) Handle(ctx context.Context, cmd ChangeShippingInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := order.NewAddress(cmd.AddressLine1(), cmd.AddressLine2(), cmd.PostalCode())
	if err != nil {
		return err
	}

	shippingInfo, err := order.NewShippingInfo(cmd.ReceiverName(), cmd.ReceiverPhone(), address)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = existingOrder.ChangeShippingInfo(shippingInfo); err != nil {
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
