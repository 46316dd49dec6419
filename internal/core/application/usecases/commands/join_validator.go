package commands

import (
	"context"
	"errors"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var ErrDuplicateMemberID = errors.New("duplicate id exists")

// Violation type tags reported by the collect-all validation strategy.
// Clients use them to map violations onto form fields.
const (
	ViolationTypeEmpty       = "empty"
	ViolationTypeDuplicateID = "duplicateid"
)

// JoinValidator validates a member registration request before the member
// aggregate is created. Implementations differ in how they report problems:
// the first one found, or all of them at once.
type JoinValidator interface {
	Validate(ctx context.Context, memberRepo ports.MemberRepository, cmd RegisterMemberCommand) error
}

// FailFastJoinValidator stops at the first violation it finds.
// Field checks run in declaration order, the duplicate-id lookup last.
type FailFastJoinValidator struct{}

// NewFailFastJoinValidator creates a validator that reports only the first violation.
func NewFailFastJoinValidator() FailFastJoinValidator {
	return FailFastJoinValidator{}
}

// Validate checks the registration fields one by one and returns as soon as a
// violation is found.
func (v FailFastJoinValidator) Validate(
	ctx context.Context,
	memberRepo ports.MemberRepository,
	cmd RegisterMemberCommand,
) error {
	if cmd.ID() == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if cmd.Name() == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if cmd.Password() == "" {
		return errs.NewValueIsRequiredError("password")
	}

	exists, err := memberRepo.ExistsWithID(ctx, cmd.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewValueIsInvalidErrorWithCause("id", ErrDuplicateMemberID)
	}

	return nil
}

// CollectAllJoinValidator runs every check and reports all violations in a
// single ValidationErrors value, so a registration form can show every
// problem at once instead of one per submit.
type CollectAllJoinValidator struct{}

// NewCollectAllJoinValidator creates a validator that aggregates all violations.
func NewCollectAllJoinValidator() CollectAllJoinValidator {
	return CollectAllJoinValidator{}
}

// Validate checks every registration field plus the duplicate-id rule and
// returns the full list of violations, or nil when the request is clean.
// The duplicate-id lookup is skipped when the id itself is missing.
func (v CollectAllJoinValidator) Validate(
	ctx context.Context,
	memberRepo ports.MemberRepository,
	cmd RegisterMemberCommand,
) error {
	var violations []errs.FieldViolation

	if cmd.ID() == "" {
		violations = append(violations, errs.NewFieldViolation("id is required", ViolationTypeEmpty))
	}
	if cmd.Name() == "" {
		violations = append(violations, errs.NewFieldViolation("name is required", ViolationTypeEmpty))
	}
	if cmd.Password() == "" {
		violations = append(violations, errs.NewFieldViolation("password is required", ViolationTypeEmpty))
	}

	if cmd.ID() != "" {
		exists, err := memberRepo.ExistsWithID(ctx, cmd.ID())
		if err != nil {
			return err
		}
		if exists {
			violations = append(violations, errs.NewFieldViolation("duplicate id exists", ViolationTypeDuplicateID))
		}
	}

	if len(violations) > 0 {
		return errs.NewValidationErrors(violations)
	}

	return nil
}
