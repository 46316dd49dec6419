// Package member provides the member entity created by the registration flow.
package member

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrMemberIsNotConstructed is returned when using a zero-value Member.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

	// ErrPasswordMismatch is returned when the supplied current password does
	// not match the stored one.
	ErrPasswordMismatch = errs.NewValueIsInvalidError("oldPassword")
)

// Member is an entity identified by its member id. The registration use case
// validates join requests before a Member is ever created, so a constructed
// Member always carries non-empty credentials.
type Member struct {
	id       string
	name     string
	password string
	guard    guard.ConstructorGuard
}

// NewMember creates a Member. All fields are required.
func NewMember(id string, name string, password string) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPassword(password),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Member was created via NewMember.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// ID returns the member identifier.
func (m *Member) ID() string {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Password returns the stored password.
func (m *Member) Password() string {
	return m.password
}

// IsEqual compares two members by id only.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id == other.id
}

// ChangePassword replaces the password after verifying the current one.
// Fails with ErrPasswordMismatch when oldPassword does not match, and
// rejects an empty new password.
func (m *Member) ChangePassword(oldPassword string, newPassword string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if m.password != oldPassword {
		return ErrPasswordMismatch
	}

	return m.setPassword(newPassword)
}

func (m *Member) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	m.password = password
	return nil
}
