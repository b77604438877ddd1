package queries_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDispatcherWorkloadsQuery_Valid(t *testing.T) {
	query := queries.NewGetDispatcherWorkloadsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetDispatcherWorkloadsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDispatcherWorkloadsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDispatcherWorkloadsQueryIsNotConstructed)
}
