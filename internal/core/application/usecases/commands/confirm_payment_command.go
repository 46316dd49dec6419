package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
)

// ConfirmPaymentCommand represents a payment confirmation for an order.
// Moves the order from "payment waiting" into "preparing".
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNo

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm payment for the order
// with the given number. Returns an error if the order number is not valid.
func NewConfirmPaymentCommand(orderNo kernel.OrderNo) (ConfirmPaymentCommand, error) {
	confirmCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderNo(orderNo); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPaymentCommandIsNotConstructed if validation fails.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderNo returns the number of the paid order.
func (c ConfirmPaymentCommand) OrderNo() kernel.OrderNo {
	return c.orderNo
}

func (c *ConfirmPaymentCommand) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}
