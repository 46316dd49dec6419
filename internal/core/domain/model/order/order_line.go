package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when using a zero-value OrderLine.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is a priced quantity of one product. The line is the sole
// authority for its own subtotal: the amount is derived from price and
// quantity at construction and can never disagree with them.
//
// The line keeps its own copy of the price, so changes to the caller's Money
// value after construction cannot propagate into the line. Once constructed,
// price, quantity, and amount never change.
type OrderLine struct {
	product  product.Product
	price    kernel.Money
	quantity int
	amount   kernel.Money
	guard    guard.ConstructorGuard
}

// NewOrderLine creates an OrderLine for quantity units of the product at the
// given unit price.
//
// Validation rules:
//   - the product must be constructed and orderable
//   - the price must be constructed
//   - the quantity must be positive
//
// The subtotal is computed here as price multiplied by quantity; callers never
// supply it.
func NewOrderLine(p product.Product, price kernel.Money, quantity int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProduct(p),
		line.setPrice(price),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	if err := line.calculateAmount(); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate checks that the OrderLine was created via NewOrderLine.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// Product returns the product this line refers to.
func (l OrderLine) Product() product.Product {
	return l.product
}

// Price returns the line's own copy of the unit price.
func (l OrderLine) Price() kernel.Money {
	return l.price
}

// Quantity returns the number of units ordered.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Amount returns the derived subtotal (price multiplied by quantity).
func (l OrderLine) Amount() kernel.Money {
	return l.amount
}

// setProduct validates the product and enforces the orderability rule.
// An unpurchasable product aborts line construction.
func (l *OrderLine) setProduct(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if !p.IsOrderable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"product", fmt.Errorf("%s is not orderable", p.Name()))
	}

	l.product = p
	return nil
}

// setPrice stores an owned copy of the price constructed from the input's
// current amount.
func (l *OrderLine) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	l.price = kernel.NewMoney(price.Amount())
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}

func (l *OrderLine) calculateAmount() error {
	amount, err := l.price.Multiply(l.quantity)
	if err != nil {
		return err
	}

	l.amount = amount
	return nil
}
