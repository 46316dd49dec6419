package product_test

import (
	"testing"

	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with name and code", func(t *testing.T) {
		p, err := product.NewProduct("keyboard", "001")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "keyboard", p.Name())
		assert.Equal(t, "001", p.Code())
		assert.True(t, p.IsOrderable())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct("", "001")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := product.NewProduct("keyboard", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should mark sentinel product as not orderable", func(t *testing.T) {
		p, err := product.NewProduct("notOrderAbleProduct", "003")

		require.NoError(t, err)
		assert.False(t, p.IsOrderable())
	})
}

func TestProduct_IsEqual(t *testing.T) {
	t.Run("should compare by code only", func(t *testing.T) {
		a, _ := product.NewProduct("keyboard", "001")
		b, _ := product.NewProduct("renamed keyboard", "001")
		c, _ := product.NewProduct("keyboard", "002")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail for zero value product", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
