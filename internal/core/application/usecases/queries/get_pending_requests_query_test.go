package queries_test

import (
	"testing"

	"freshly/internal/core/application/usecases/queries"
	"freshly/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingRequestsQuery(t *testing.T) {
	t.Run("should create query for each allowed role", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleDriver, kernel.RoleBuyer, kernel.RoleFarmer} {
			callerID := kernel.NewUUID()

			query, err := queries.NewGetPendingRequestsQuery(callerID, role)

			require.NoError(t, err)
			require.NoError(t, query.Validate())
			assert.True(t, query.CallerID().IsEqual(callerID))
			assert.Equal(t, role, query.Role())
		}
	})

	t.Run("should fail with invalid caller id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetPendingRequestsQuery(invalidID, kernel.RoleDriver)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := queries.NewGetPendingRequestsQuery(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.GetPendingRequestsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetPendingRequestsQueryIsNotConstructed, err)
	})
}
