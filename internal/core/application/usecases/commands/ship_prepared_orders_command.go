package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrShipPreparedOrdersCommandIsNotConstructed = errors.New(
		"ShipPreparedOrdersCommand must be created via NewShipPreparedOrdersCommand constructor",
	)
)

// ShipPreparedOrdersCommand triggers shipment of all orders in "preparing" status.
// This batch operation is run periodically by the fulfillment scheduler.
//
// Example:
//
//	cmd := NewShipPreparedOrdersCommand()
//	handler := NewShipPreparedOrdersCommandHandler(uowFactory)
//
//	// Run periodically to move prepared orders out of the warehouse
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Shipment run failed: %v", err)
//	}
type ShipPreparedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewShipPreparedOrdersCommand creates a command to ship all prepared orders.
// This is a parameterless command that processes every order ready for shipment.
func NewShipPreparedOrdersCommand() ShipPreparedOrdersCommand {
	command := ShipPreparedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipPreparedOrdersCommandIsNotConstructed if validation fails.
func (c *ShipPreparedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrShipPreparedOrdersCommandIsNotConstructed)
}
