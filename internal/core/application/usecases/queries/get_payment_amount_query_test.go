package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentAmountQuery_ValidInput(t *testing.T) {
	orderNo := kernel.GenerateOrderNo()
	query, err := queries.NewGetPaymentAmountQuery(orderNo, "alice", "VIP")
	require.NoError(t, err)
	assert.Equal(t, orderNo, query.OrderNo())
	assert.Equal(t, "alice", query.UserID())
	assert.Equal(t, "VIP", query.Grade())
}

func TestNewGetPaymentAmountQuery_MissingBuyer(t *testing.T) {
	_, err := queries.NewGetPaymentAmountQuery(kernel.GenerateOrderNo(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrUserIDIsRequired)
	assert.ErrorIs(t, err, queries.ErrGradeIsRequired)
}

func TestNewGetPaymentAmountQuery_InvalidOrderNo(t *testing.T) {
	_, err := queries.NewGetPaymentAmountQuery(kernel.OrderNo{}, "alice", "VIP")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderNoIsNotConstructed)
}
