package services_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGradeProvider replaces the real user-grade lookup in tests.
type stubGradeProvider struct {
	hasOrders bool
	rate      int
}

func (s stubGradeProvider) HasOrders(string) (bool, error)          { return s.hasOrders, nil }
func (s stubGradeProvider) DiscountRatePercent(string) (int, error) { return s.rate, nil }

// stubDiscounter is a fixed-result strategy for service-level tests.
type stubDiscounter struct {
	result kernel.Money
}

func (s stubDiscounter) Apply(kernel.Money, string, string) (kernel.Money, error) {
	return s.result, nil
}

func TestCalculateDiscountService(t *testing.T) {
	t.Run("delegates to the injected strategy", func(t *testing.T) {
		service := services.NewCalculateDiscountService(stubDiscounter{result: kernel.NewMoney(25)})

		payable, err := service.CalculateDiscount(kernel.NewMoney(100), "123", "VIP")

		require.NoError(t, err)
		assert.Equal(t, int64(25), payable.Amount())
	})

	t.Run("rejects zero value amount", func(t *testing.T) {
		service := services.NewCalculateDiscountService(stubDiscounter{})
		var amount kernel.Money

		_, err := service.CalculateDiscount(amount, "123", "VIP")

		require.Error(t, err)
	})
}

func TestGradeDiscounter_Apply(t *testing.T) {
	t.Run("applies grade and visit discount for returning users", func(t *testing.T) {
		discounter := services.NewGradeDiscounter(stubGradeProvider{hasOrders: true, rate: 50})

		payable, err := discounter.Apply(kernel.NewMoney(100), "123", "VIP")

		require.NoError(t, err)
		// 50% grade discount, then the visit discount halves the rest.
		assert.Equal(t, int64(25), payable.Amount())
	})

	t.Run("charges full amount for first-time users", func(t *testing.T) {
		discounter := services.NewGradeDiscounter(stubGradeProvider{hasOrders: false, rate: 50})

		payable, err := discounter.Apply(kernel.NewMoney(100), "123", "VIP")

		require.NoError(t, err)
		assert.Equal(t, int64(100), payable.Amount())
	})

	t.Run("does not mutate the input amount", func(t *testing.T) {
		discounter := services.NewGradeDiscounter(stubGradeProvider{hasOrders: true, rate: 10})
		amount := kernel.NewMoney(100)

		_, err := discounter.Apply(amount, "123", "GOLD")

		require.NoError(t, err)
		assert.Equal(t, int64(100), amount.Amount())
	})
}
