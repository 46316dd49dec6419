package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrRegisterMemberCommandIsNotConstructed = errors.New(
		"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
	)
)

// RegisterMemberCommand represents a request to register a new member.
// The command carries the raw registration fields unchecked; field and
// duplicate-id validation is the job of the JoinValidator selected by the
// handler, so that a single request can report either the first violation
// or all of them at once.
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	id       string
	name     string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterMemberCommand creates a command to register a member with the
// given credentials. The fields are validated later by the registration
// validator, not here.
func NewRegisterMemberCommand(id string, name string, password string) RegisterMemberCommand {
	registerCommand := RegisterMemberCommand{
		id:       id,
		name:     name,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	return registerCommand
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterMemberCommandIsNotConstructed if validation fails.
func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

// ID returns the requested member id.
func (c RegisterMemberCommand) ID() string {
	return c.id
}

// Name returns the requested member name.
func (c RegisterMemberCommand) Name() string {
	return c.name
}

// Password returns the requested member password.
func (c RegisterMemberCommand) Password() string {
	return c.password
}
