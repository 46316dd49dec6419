package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrChangeShippingInfoCommandIsNotConstructed = errors.New(
		"ChangeShippingInfoCommand must be created via NewChangeShippingInfoCommand constructor",
	)
)

// ChangeShippingInfoCommand represents a request to replace the shipping
// destination of an order that has not been shipped yet.
type ChangeShippingInfoCommand struct { //nolint:recvcheck //using for validation
	orderNo       kernel.OrderNo
	receiverName  string
	receiverPhone string
	addressLine1  string
	addressLine2  string
	postalCode    string

	guard guard.ConstructorGuard
}

// NewChangeShippingInfoCommand creates a command to change the shipping info
// of the order with the given number. Validates the order number and the
// receiver and address fields required for shipment.
func NewChangeShippingInfoCommand(
	orderNo kernel.OrderNo,
	receiverName string,
	receiverPhone string,
	addressLine1 string,
	addressLine2 string,
	postalCode string,
) (ChangeShippingInfoCommand, error) {
	changeCommand := ChangeShippingInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changeCommand.setOrderNo(orderNo),
		changeCommand.setReceiverName(receiverName),
		changeCommand.setReceiverPhone(receiverPhone),
		changeCommand.setAddress(addressLine1, addressLine2, postalCode),
	); err != nil {
		return ChangeShippingInfoCommand{}, err
	}

	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeShippingInfoCommandIsNotConstructed if validation fails.
func (c ChangeShippingInfoCommand) Validate() error {
	return c.guard.Validate(ErrChangeShippingInfoCommandIsNotConstructed)
}

// OrderNo returns the number of the order whose shipping info changes.
func (c ChangeShippingInfoCommand) OrderNo() kernel.OrderNo {
	return c.orderNo
}

// ReceiverName returns the new receiver name.
func (c ChangeShippingInfoCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the new receiver phone number.
func (c ChangeShippingInfoCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// AddressLine1 returns the new primary address line.
func (c ChangeShippingInfoCommand) AddressLine1() string {
	return c.addressLine1
}

// AddressLine2 returns the new optional secondary address line.
func (c ChangeShippingInfoCommand) AddressLine2() string {
	return c.addressLine2
}

// PostalCode returns the new postal code.
func (c ChangeShippingInfoCommand) PostalCode() string {
	return c.postalCode
}

func (c *ChangeShippingInfoCommand) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *ChangeShippingInfoCommand) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *ChangeShippingInfoCommand) setReceiverPhone(receiverPhone string) error {
	if receiverPhone == "" {
		return ErrReceiverPhoneIsRequired
	}

	c.receiverPhone = receiverPhone
	return nil
}

func (c *ChangeShippingInfoCommand) setAddress(line1 string, line2 string, postalCode string) error {
	if line1 == "" {
		return ErrAddressLine1IsRequired
	}
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}

	c.addressLine1 = line1
	c.addressLine2 = line2
	c.postalCode = postalCode
	return nil
}
