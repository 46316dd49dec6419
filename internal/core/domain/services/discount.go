package services

import (
	"ordering/internal/core/domain/model/kernel"
)

// OrderDiscounter adjusts a monetary amount for a given user context.
// It is a pluggable strategy so the service layer stays testable without a
// real user-grade lookup: implementations must be side-effect free and
// substitutable with a stub.
type OrderDiscounter interface {
	// Apply returns the adjusted amount for the user. It never mutates the
	// input amount.
	Apply(amount kernel.Money, userID string, grade string) (kernel.Money, error)
}

// UserGradeProvider supplies the user facts a discounter needs: whether the
// user has ordered before and the discount rate their grade earns.
type UserGradeProvider interface {
	// HasOrders reports whether the user has at least one previous order.
	HasOrders(userID string) (bool, error)

	// DiscountRatePercent returns the percentage discount for the grade.
	DiscountRatePercent(grade string) (int, error)
}

// CalculateDiscountService computes the payable amount for an order total by
// delegating to an injected OrderDiscounter strategy.
type CalculateDiscountService struct {
	discounter OrderDiscounter
}

// NewCalculateDiscountService creates the service with the given strategy.
func NewCalculateDiscountService(discounter OrderDiscounter) CalculateDiscountService {
	return CalculateDiscountService{discounter: discounter}
}

// CalculateDiscount returns the amount adjusted by the configured strategy.
func (s CalculateDiscountService) CalculateDiscount(amount kernel.Money, userID string, grade string) (kernel.Money, error) {
	if err := amount.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return s.discounter.Apply(amount, userID, grade)
}

// GradeDiscounter is the default OrderDiscounter. For users with previous
// orders it applies the grade discount and then a visit discount of half the
// remaining amount; users without order history pay the full amount.
type GradeDiscounter struct {
	grades UserGradeProvider
}

// NewGradeDiscounter creates a GradeDiscounter backed by the given provider.
func NewGradeDiscounter(grades UserGradeProvider) GradeDiscounter {
	return GradeDiscounter{grades: grades}
}

// Apply implements OrderDiscounter.
func (d GradeDiscounter) Apply(amount kernel.Money, userID string, grade string) (kernel.Money, error) {
	hasOrders, err := d.grades.HasOrders(userID)
	if err != nil {
		return kernel.Money{}, err
	}

	if !hasOrders {
		return kernel.NewMoney(amount.Amount()), nil
	}

	rate, err := d.grades.DiscountRatePercent(grade)
	if err != nil {
		return kernel.Money{}, err
	}

	discounted := amount.Amount() - amount.Amount()*int64(rate)/100
	return kernel.NewMoney(discounted / 2), nil
}
