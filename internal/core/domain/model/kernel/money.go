package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use a zero-value Money.
// Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable monetary amount expressed as a signed integer in the
// smallest currency unit. It is a value object: arithmetic never mutates the
// operands and always returns a new instance, so a Money handed to another
// object can never change underneath it.
//
// Negative amounts are permitted; discount calculations rely on subtracting
// from an amount and may legitimately pass through intermediate values.
//
// The zero value of Money is invalid and fails validation - use NewMoney.
//
// Example:
//
//	price := kernel.NewMoney(1000)
//	total, err := price.Multiply(3)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(total) // Output: Money(3000)
type Money struct {
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money with the given amount. Any signed amount is
// accepted; the constructor never fails.
func NewMoney(amount int64) Money {
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks that the Money was created via NewMoney.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns a new Money holding the sum of both amounts.
// Neither operand is modified. Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := validateBoth(m, other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount), nil
}

// Multiply returns a new Money holding the amount multiplied by factor.
// The operand is not modified and must be properly constructed.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount * int64(factor)), nil
}

// IsEqual compares two Money values by amount.
// Both operands must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := validateBoth(m, other); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// String returns a representation in the format "Money(amount)".
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("Money(%d)", m.amount)
}

func validateBoth(a, b Money) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
