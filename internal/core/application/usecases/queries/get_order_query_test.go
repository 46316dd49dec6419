package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderNo := kernel.GenerateOrderNo()
	query, err := queries.NewGetOrderQuery(orderNo)
	require.NoError(t, err)
	assert.Equal(t, orderNo, query.OrderNo())
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidOrderNo(t *testing.T) {
	invalidOrderNo := kernel.OrderNo{} // zero value, should trigger validation error
	_, err := queries.NewGetOrderQuery(invalidOrderNo)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderNoIsNotConstructed)
}

func TestGetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrderQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
