package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable destination value object. Unlike ShippingInfo,
// which compares by receiver identity, Address uses plain value equality
// over all of its fields.
type Address struct {
	line1      string
	line2      string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address. Line 1 and the postal code are required;
// line 2 is optional.
func NewAddress(line1 string, line2 string, postalCode string) (Address, error) {
	a := Address{
		line2: line2,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setLine1(line1), a.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line1 returns the primary address line.
func (a Address) Line1() string {
	return a.line1
}

// Line2 returns the secondary address line, possibly empty.
func (a Address) Line2() string {
	return a.line2
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses by all fields.
// Both addresses must be properly constructed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// String returns a representation in the format "Address(line1, line2, postalCode)".
func (a Address) String() string {
	return fmt.Sprintf("Address(%s, %s, %s)", a.line1, a.line2, a.postalCode)
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}
