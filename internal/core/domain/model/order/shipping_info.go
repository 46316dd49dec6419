package order

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrShippingInfoIsNotConstructed is returned when using a zero-value ShippingInfo.
var ErrShippingInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"shipping info must be created via NewShippingInfo constructor")

// ShippingInfo is the immutable destination record of an order: who receives
// the shipment and where. It is replaced wholesale through the aggregate's
// guarded ChangeShippingInfo operation, never mutated in place.
//
// Equality is defined by receiver identity (name and phone) only; the address
// is deliberately excluded, so an address correction still compares equal to
// the original record for the same recipient.
type ShippingInfo struct {
	receiverName  string
	receiverPhone string
	address       Address
	guard         guard.ConstructorGuard
}

// NewShippingInfo creates a ShippingInfo. Receiver name and phone are
// required, and the address must be properly constructed.
func NewShippingInfo(receiverName string, receiverPhone string, address Address) (ShippingInfo, error) {
	si := ShippingInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		si.setReceiverName(receiverName),
		si.setReceiverPhone(receiverPhone),
		si.setAddress(address),
	); err != nil {
		return ShippingInfo{}, err
	}

	return si, nil
}

// Validate checks that the ShippingInfo was created via NewShippingInfo.
func (si ShippingInfo) Validate() error {
	return si.guard.Validate(ErrShippingInfoIsNotConstructed)
}

// ReceiverName returns the recipient's name.
func (si ShippingInfo) ReceiverName() string {
	return si.receiverName
}

// ReceiverPhone returns the recipient's phone number.
func (si ShippingInfo) ReceiverPhone() string {
	return si.receiverPhone
}

// Address returns the destination address.
func (si ShippingInfo) Address() Address {
	return si.address
}

// IsEqual compares two shipping records by receiver name and phone only.
// The address does not participate in equality.
// Both records must be properly constructed.
func (si ShippingInfo) IsEqual(other ShippingInfo) (bool, error) {
	if err := errors.Join(si.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return si.receiverName == other.receiverName &&
		si.receiverPhone == other.receiverPhone, nil
}

func (si *ShippingInfo) setReceiverName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	si.receiverName = name
	return nil
}

func (si *ShippingInfo) setReceiverPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("receiverPhone")
	}
	si.receiverPhone = phone
	return nil
}

func (si *ShippingInfo) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	si.address = address
	return nil
}
