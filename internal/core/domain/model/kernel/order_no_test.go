package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNo(t *testing.T) {
	t.Run("should create order number from id string", func(t *testing.T) {
		no, err := kernel.NewOrderNo("ORD-0001")

		require.NoError(t, err)
		require.NoError(t, no.Validate())
		assert.Equal(t, "ORD-0001", no.String())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := kernel.NewOrderNo("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required")
	})
}

func TestGenerateOrderNo(t *testing.T) {
	t.Run("should generate unique order numbers", func(t *testing.T) {
		first := kernel.GenerateOrderNo()
		second := kernel.GenerateOrderNo()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestOrderNo_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var no kernel.OrderNo

		err := no.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderNoIsNotConstructed, err)
	})
}

func TestOrderNo_IsEqual(t *testing.T) {
	t.Run("should compare by id only", func(t *testing.T) {
		a, _ := kernel.NewOrderNo("1")
		b, _ := kernel.NewOrderNo("1")
		c, _ := kernel.NewOrderNo("2")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
