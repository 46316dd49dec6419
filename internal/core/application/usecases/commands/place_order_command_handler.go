package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Builds the order aggregate from the requested products and shipping
// destination and persists it in "payment waiting" status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderNo := kernel.GenerateOrderNo()
//	cmd, _ := NewPlaceOrderCommand(orderNo, products, "J. Doe", "010-1234-5678", "Main St 1", "", "04532")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now placed and awaiting payment confirmation
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Constructs the order lines and shipping info, rejecting products that may
// not be ordered, and creates the order in "payment waiting" status.
// Uses transaction to ensure the order is properly persisted or rolled back on error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines, err := h.buildOrderLines(cmd.Products())
	if err != nil {
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
	newOrder, err := order.NewOrder(cmd.OrderNo(), lines, shippingInfo)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildOrderLines converts the requested products into order lines,
// validating each product against the catalog rules.
func (h *PlaceOrderCommandHandler) buildOrderLines(products []OrderProduct) ([]order.OrderLine, error) {
	lines := make([]order.OrderLine, 0, len(products))

	for _, p := range products {
		orderedProduct, err := product.NewProduct(p.Name, p.Code)
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(orderedProduct, kernel.NewMoney(p.Price), p.Quantity)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
