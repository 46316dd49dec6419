package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderLine(t *testing.T) {
	keyboard, _ := product.NewProduct("keyboard", "001")

	t.Run("should derive amount from price and quantity", func(t *testing.T) {
		line, err := order.NewOrderLine(keyboard, kernel.NewMoney(100), 3)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, int64(100), line.Price().Amount())
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, int64(300), line.Amount().Amount())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewOrderLine(keyboard, kernel.NewMoney(100), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewOrderLine(keyboard, kernel.NewMoney(100), -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with zero value price", func(t *testing.T) {
		var price kernel.Money

		_, err := order.NewOrderLine(keyboard, price, 1)

		require.Error(t, err)
	})

	t.Run("should fail with zero value product", func(t *testing.T) {
		var p product.Product

		_, err := order.NewOrderLine(p, kernel.NewMoney(100), 1)

		require.Error(t, err)
	})

	t.Run("should reject not orderable product", func(t *testing.T) {
		unpurchasable, _ := product.NewProduct("notOrderAbleProduct", "003")

		_, err := order.NewOrderLine(unpurchasable, kernel.NewMoney(100), 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "notOrderAbleProduct is not orderable")
	})
}

func TestOrderLine_PriceImmutability(t *testing.T) {
	t.Run("line keeps its own copy of the price", func(t *testing.T) {
		keyboard, _ := product.NewProduct("keyboard", "001")
		price := kernel.NewMoney(1000)

		line, err := order.NewOrderLine(keyboard, price, 1)
		require.NoError(t, err)

		// Rebinding the caller's variable must not reach into the line.
		price = kernel.NewMoney(2000)
		_ = price

		assert.Equal(t, int64(1000), line.Price().Amount())
		assert.Equal(t, int64(1000), line.Amount().Amount())
	})
}

func TestOrderLine_Validate(t *testing.T) {
	t.Run("zero value line fails validation", func(t *testing.T) {
		var line order.OrderLine

		err := line.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderLineIsNotConstructed, err)
	})
}
