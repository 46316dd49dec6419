package commands

import (
	"context"

	"ordering/internal/core/domain/model/member"
)

// RegisterMemberCommandHandler handles the business logic for member registration.
// Runs the configured JoinValidator against the request and, if it passes,
// creates and persists the member aggregate.
//
// Example:
//
//	handler := NewRegisterMemberCommandHandler(uowFactory, NewCollectAllJoinValidator())
//	cmd := NewRegisterMemberCommand("alice", "Alice", "secret")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var validationErrs *errs.ValidationErrors
//	    if errors.As(err, &validationErrs) {
//	        // show every violation on the registration form
//	    }
//	    return err
//	}
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
	validator  JoinValidator
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
// Requires a MemberUoWFactory for transactional persistence and a JoinValidator
// selecting the validation strategy (fail-fast or collect-all).
func NewRegisterMemberCommandHandler(
	uowFactory MemberUoWFactory,
	validator JoinValidator,
) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle processes the member registration command.
// Validation and the duplicate-id check run inside the same transaction as
// the insert, so a concurrent registration with the same id cannot slip in
// between check and persist.
func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
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

	memberRepo := uow.MemberRepository()
	if err := h.validator.Validate(ctx, memberRepo, cmd); err != nil {
		return err
	}

	newMember, err := member.NewMember(cmd.ID(), cmd.Name(), cmd.Password())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, newMember); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
