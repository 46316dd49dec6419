package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderProductsAreRequired = errors.New("at least one product is required")
	ErrReceiverNameIsRequired   = errors.New("receiver name is required")
	ErrReceiverPhoneIsRequired  = errors.New("receiver phone is required")
	ErrAddressLine1IsRequired   = errors.New("address line1 is required")
	ErrPostalCodeIsRequired     = errors.New("postal code is required")
)

// OrderProduct describes a single purchased catalog entry within a
// PlaceOrderCommand: which product, at what unit price, how many.
type OrderProduct struct {
	Name     string
	Code     string
	Price    int64
	Quantity int
}

// PlaceOrderCommand represents a request to place a new purchase order.
// Encapsulates the purchased products and the shipping destination.
//
// Example:
//
//	orderNo := kernel.GenerateOrderNo()
//	cmd, err := NewPlaceOrderCommand(orderNo, products, "J. Doe", "010-1234-5678", "Main St 1", "", "04532")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting payment", orderNo)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo       kernel.OrderNo
	products      []OrderProduct
	receiverName  string
	receiverPhone string
	addressLine1  string
	addressLine2  string
	postalCode    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new purchase order.
// Validates that the order number is valid, at least one product is given,
// and the receiver and address fields required for shipment are present.
// Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderNo kernel.OrderNo,
	products []OrderProduct,
	receiverName string,
	receiverPhone string,
	addressLine1 string,
	addressLine2 string,
	postalCode string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderNo(orderNo),
		orderCommand.setProducts(products),
		orderCommand.setReceiverName(receiverName),
		orderCommand.setReceiverPhone(receiverPhone),
		orderCommand.setAddress(addressLine1, addressLine2, postalCode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderNo returns the unique number assigned to the new order.
func (c PlaceOrderCommand) OrderNo() kernel.OrderNo {
	return c.orderNo
}

// Products returns the purchased products.
func (c PlaceOrderCommand) Products() []OrderProduct {
	return c.products
}

// ReceiverName returns the name of the person receiving the shipment.
func (c PlaceOrderCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the phone number of the receiver.
func (c PlaceOrderCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// AddressLine1 returns the primary address line of the destination.
func (c PlaceOrderCommand) AddressLine1() string {
	return c.addressLine1
}

// AddressLine2 returns the optional secondary address line.
func (c PlaceOrderCommand) AddressLine2() string {
	return c.addressLine2
}

// PostalCode returns the destination postal code.
func (c PlaceOrderCommand) PostalCode() string {
	return c.postalCode
}

func (c *PlaceOrderCommand) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *PlaceOrderCommand) setProducts(products []OrderProduct) error {
	if len(products) == 0 {
		return ErrOrderProductsAreRequired
	}

	c.products = make([]OrderProduct, len(products))
	copy(c.products, products)
	return nil
}

func (c *PlaceOrderCommand) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *PlaceOrderCommand) setReceiverPhone(receiverPhone string) error {
	if receiverPhone == "" {
		return ErrReceiverPhoneIsRequired
	}

	c.receiverPhone = receiverPhone
	return nil
}

func (c *PlaceOrderCommand) setAddress(line1 string, line2 string, postalCode string) error {
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
