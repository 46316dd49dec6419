package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
		"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
	)
)

// CompleteDeliveriesCommand triggers delivery completion for all shipped orders.
// This batch operation is run periodically by the fulfillment scheduler.
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a command to complete all shipped deliveries.
// This is a parameterless command that processes every order in transit.
func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	command := CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveriesCommandIsNotConstructed if validation fails.
func (c *CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}
