package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUncompletedOrdersQuery(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUncompletedOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetUncompletedOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}
