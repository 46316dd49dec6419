package product_test

import (
	"testing"

	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("should create store", func(t *testing.T) {
		s, err := product.NewStore(1, false)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, 1, s.ID())
		assert.False(t, s.IsBlocked())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		_, err := product.NewStore(0, false)

		require.Error(t, err)
	})
}

func TestStore_CreateProduct(t *testing.T) {
	t.Run("open store creates products", func(t *testing.T) {
		s, _ := product.NewStore(1, false)

		p, err := s.CreateProduct("keyboard", "001")

		require.NoError(t, err)
		assert.Equal(t, "keyboard", p.Name())
	})

	t.Run("blocked store cannot create products", func(t *testing.T) {
		s, _ := product.NewStore(1, true)

		_, err := s.CreateProduct("keyboard", "001")

		require.Error(t, err)
		assert.Equal(t, product.ErrStoreIsBlocked, err)
	})

	t.Run("zero value store fails validation", func(t *testing.T) {
		var s product.Store

		_, err := s.CreateProduct("keyboard", "001")

		require.Error(t, err)
		assert.Equal(t, product.ErrStoreIsNotConstructed, err)
	})
}
