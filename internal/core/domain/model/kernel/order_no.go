package kernel

import (
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrOrderNoIsNotConstructed is returned when attempting to use a zero-value
// OrderNo. Order numbers must be created via NewOrderNo or GenerateOrderNo.
var ErrOrderNoIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNo or GenerateOrderNo constructors")

// OrderNo is the opaque identifier of an order. It is the identity of the
// Order entity: two orders with equal order numbers are the same logical
// order regardless of their other attributes.
//
// OrderNo is immutable; equality considers the id string only.
type OrderNo struct {
	id    string
	guard guard.ConstructorGuard
}

// NewOrderNo creates an OrderNo from an existing id string, typically when
// reconstructing an order from persistence or parsing external input.
// The id must be non-empty.
func NewOrderNo(id string) (OrderNo, error) {
	if id == "" {
		return OrderNo{}, errs.NewValueIsRequiredError("id")
	}

	return OrderNo{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// GenerateOrderNo creates a new unique OrderNo backed by a random UUID.
// This is the primary way to mint identifiers for freshly placed orders.
func GenerateOrderNo() OrderNo {
	return OrderNo{
		id:    uuid.NewString(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the OrderNo was created via a constructor.
func (n OrderNo) Validate() error {
	return n.guard.Validate(ErrOrderNoIsNotConstructed)
}

// IsEqual compares two order numbers by id only.
func (n OrderNo) IsEqual(other OrderNo) bool {
	return n.id == other.id
}

// String returns the raw id string. Implements the fmt.Stringer interface.
func (n OrderNo) String() string {
	return n.id
}
