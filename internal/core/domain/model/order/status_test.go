package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PaymentWaiting, order.Preparing, order.Shipped, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out of range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PaymentWaiting", order.PaymentWaiting.String())
	assert.Equal(t, "Preparing", order.Preparing.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsShippingChangeable(t *testing.T) {
	t.Run("changeable set is exactly payment waiting and preparing", func(t *testing.T) {
		assert.True(t, order.PaymentWaiting.IsShippingChangeable())
		assert.True(t, order.Preparing.IsShippingChangeable())
		assert.False(t, order.Shipped.IsShippingChangeable())
		assert.False(t, order.Delivered.IsShippingChangeable())
		assert.False(t, order.Cancelled.IsShippingChangeable())
		assert.False(t, order.Unknown.IsShippingChangeable())
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("allowed before shipment", func(t *testing.T) {
		for _, s := range []order.Status{order.PaymentWaiting, order.Preparing} {
			newStatus, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("rejected after shipment and carries current state", func(t *testing.T) {
		for _, s := range []order.Status{order.Shipped, order.Delivered, order.Cancelled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrIllegalState, s.String())
			assert.Contains(t, err.Error(), s.String())
		}
	})
}

func TestStatus_ForwardTransitions(t *testing.T) {
	t.Run("payment waiting prepares", func(t *testing.T) {
		newStatus, err := order.PaymentWaiting.Prepare()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, newStatus)
	})

	t.Run("preparing ships", func(t *testing.T) {
		newStatus, err := order.Preparing.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, newStatus)
	})

	t.Run("shipped delivers", func(t *testing.T) {
		newStatus, err := order.Shipped.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("transitions reject wrong source state", func(t *testing.T) {
		_, err := order.Preparing.Prepare()
		require.ErrorIs(t, err, errs.ErrIllegalState)

		_, err = order.PaymentWaiting.Ship()
		require.ErrorIs(t, err, errs.ErrIllegalState)

		_, err = order.Cancelled.Deliver()
		require.ErrorIs(t, err, errs.ErrIllegalState)
	})
}
