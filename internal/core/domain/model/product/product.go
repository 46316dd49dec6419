package product

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// notOrderableProductName is the catalog sentinel marking a product that must
// never appear on an order line.
const notOrderableProductName = "notOrderAbleProduct"

// ErrProductIsNotConstructed is returned when attempting to use a zero-value
// Product. Products must be created via NewProduct or Store.CreateProduct.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
	"product must be created via NewProduct constructor")

// Product is an immutable value object identifying a purchasable item by its
// catalog code and display name. Equality considers the code only; the name is
// a business discriminant used by the orderability rule.
//
// Example:
//
//	p, err := product.NewProduct("keyboard", "001")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p.IsOrderable()) // Output: true
type Product struct {
	name  string
	code  string
	guard guard.ConstructorGuard
}

// NewProduct creates a Product with the given name and catalog code.
// Both must be non-empty.
func NewProduct(name string, code string) (Product, error) {
	p := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setName(name), p.setCode(code)); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate checks that the Product was created via a constructor.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Code returns the product's catalog code.
func (p Product) Code() string {
	return p.code
}

// IsOrderable reports whether the product may appear on an order line.
// Products carrying the not-orderable sentinel name are rejected at order
// line construction.
func (p Product) IsOrderable() bool {
	return p.name != notOrderableProductName
}

// IsEqual compares two products by catalog code only.
func (p Product) IsEqual(other Product) bool {
	return p.code == other.code
}

// String returns a representation in the format "Product(name, code)".
func (p Product) String() string {
	return fmt.Sprintf("Product(%s, %s)", p.name, p.code)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}
