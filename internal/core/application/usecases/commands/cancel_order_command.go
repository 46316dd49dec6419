package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an existing order.
// Cancellation is only possible while the order has not been shipped.
//
// Example:
//
//	orderNo, _ := kernel.NewOrderNo("ORDER-0001")
//	cmd, err := NewCancelOrderCommand(orderNo)
//	if err != nil {
//	    return fmt.Errorf("invalid cancellation request: %w", err)
//	}
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to cancel order: %w", err)
//	}
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNo

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the given number.
// Returns an error if the order number is not valid.
func NewCancelOrderCommand(orderNo kernel.OrderNo) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderNo(orderNo); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order to cancel.
func (c CancelOrderCommand) OrderNo() kernel.OrderNo {
	return c.orderNo
}

func (c *CancelOrderCommand) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}
