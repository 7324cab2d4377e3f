package request_test

import (
	"testing"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryRequest(t *testing.T) {
	validID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	farmerID := kernel.NewUUID()
	weight, _ := kernel.NewWeight(25)

	t.Run("should create pending request with all valid parameters", func(t *testing.T) {
		req, err := request.NewDeliveryRequest(validID, buyerID, farmerID, weight, "Farm Gate 3", "12 Main St")

		require.NoError(t, err)
		assert.NotNil(t, req)
		require.NoError(t, req.Validate())
		assert.True(t, req.ID().IsEqual(validID))
		assert.True(t, req.BuyerID().IsEqual(buyerID))
		assert.True(t, req.FarmerID().IsEqual(farmerID))
		assert.True(t, req.Weight().IsEqual(weight))
		assert.Equal(t, "Farm Gate 3", req.Pickup())
		assert.Equal(t, "12 Main St", req.DropOff())
		assert.Equal(t, request.Pending, req.Status())
		assert.Nil(t, req.Driver())
		assert.False(t, req.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		req, err := request.NewDeliveryRequest(invalidID, buyerID, farmerID, weight, "a", "b")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unconstructed weight", func(t *testing.T) {
		var invalidWeight kernel.Weight

		req, err := request.NewDeliveryRequest(validID, buyerID, farmerID, invalidWeight, "a", "b")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "weight must be created")
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		req, err := request.NewDeliveryRequest(validID, buyerID, farmerID, kernel.ZeroWeight(), "a", "b")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "weight")
	})

	t.Run("should fail with empty pickup", func(t *testing.T) {
		req, err := request.NewDeliveryRequest(validID, buyerID, farmerID, weight, "", "b")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, request.ErrPickupIsRequired)
	})

	t.Run("should fail with empty drop-off", func(t *testing.T) {
		req, err := request.NewDeliveryRequest(validID, buyerID, farmerID, weight, "a", "")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, request.ErrDropOffIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		req, err := request.NewDeliveryRequest(invalidID, buyerID, farmerID, weight, "", "")

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "pickup")
		assert.Contains(t, err.Error(), "dropOff")
	})
}

func TestRestoreDeliveryRequest(t *testing.T) {
	id := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	farmerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	weight, _ := kernel.NewWeight(25)
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("should restore pending request without driver", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, nil, weight, "a", "b", request.Pending, createdAt)

		require.NoError(t, err)
		assert.Equal(t, request.Pending, req.Status())
		assert.Nil(t, req.Driver())
		assert.Equal(t, createdAt, req.CreatedAt())
	})

	t.Run("should restore accepted request with driver", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, &driverID, weight, "a", "b", request.Accepted, createdAt)

		require.NoError(t, err)
		assert.Equal(t, request.Accepted, req.Status())
		require.NotNil(t, req.Driver())
		assert.True(t, req.Driver().IsEqual(driverID))
	})

	t.Run("should reject accepted request without driver", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, nil, weight, "a", "b", request.Accepted, createdAt)

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "not a valid status to have no driver")
	})

	t.Run("should reject pending request with driver", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, &driverID, weight, "a", "b", request.Pending, createdAt)

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "not a valid status to have a driver")
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, nil, weight, "a", "b", request.Unknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, req)
	})

	t.Run("should reject zero createdAt", func(t *testing.T) {
		req, err := request.RestoreDeliveryRequest(
			id, buyerID, farmerID, nil, weight, "a", "b", request.Pending, time.Time{})

		require.Error(t, err)
		assert.Nil(t, req)
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestDeliveryRequest_Accept(t *testing.T) {
	weight, _ := kernel.NewWeight(25)

	newPendingRequest := func(t *testing.T) *request.DeliveryRequest {
		t.Helper()
		req, err := request.NewDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")
		require.NoError(t, err)
		return req
	}

	t.Run("should stamp driver and move to Accepted", func(t *testing.T) {
		req := newPendingRequest(t)
		driverID := kernel.NewUUID()

		err := req.Accept(driverID)

		require.NoError(t, err)
		assert.Equal(t, request.Accepted, req.Status())
		require.NotNil(t, req.Driver())
		assert.True(t, req.Driver().IsEqual(driverID))
	})

	t.Run("should fail with invalid driver id", func(t *testing.T) {
		req := newPendingRequest(t)
		var invalidID kernel.UUID

		err := req.Accept(invalidID)

		require.Error(t, err)
		assert.Equal(t, request.Pending, req.Status())
		assert.Nil(t, req.Driver())
	})

	t.Run("should fail when already accepted", func(t *testing.T) {
		req := newPendingRequest(t)
		firstDriver := kernel.NewUUID()
		secondDriver := kernel.NewUUID()

		require.NoError(t, req.Accept(firstDriver))
		err := req.Accept(secondDriver)

		require.Error(t, err)
		assert.True(t, req.Driver().IsEqual(firstDriver))
	})
}

func TestDeliveryRequest_Deliver(t *testing.T) {
	weight, _ := kernel.NewWeight(25)

	t.Run("should move accepted request to Delivered", func(t *testing.T) {
		req, _ := request.NewDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")
		require.NoError(t, req.Accept(kernel.NewUUID()))

		err := req.Deliver()

		require.NoError(t, err)
		assert.Equal(t, request.Delivered, req.Status())
		assert.NotNil(t, req.Driver())
	})

	t.Run("should fail for pending request", func(t *testing.T) {
		req, _ := request.NewDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")

		err := req.Deliver()

		require.Error(t, err)
		assert.Equal(t, request.Pending, req.Status())
	})
}

func TestDeliveryRequest_Cancel(t *testing.T) {
	weight, _ := kernel.NewWeight(25)

	t.Run("should cancel pending request", func(t *testing.T) {
		req, _ := request.NewDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")

		err := req.Cancel()

		require.NoError(t, err)
		assert.Equal(t, request.Cancelled, req.Status())
		assert.Nil(t, req.Driver())
	})

	t.Run("should fail for accepted request", func(t *testing.T) {
		req, _ := request.NewDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")
		require.NoError(t, req.Accept(kernel.NewUUID()))

		err := req.Cancel()

		require.Error(t, err)
		assert.Equal(t, request.Accepted, req.Status())
	})
}

func TestDeliveryRequest_Validate(t *testing.T) {
	t.Run("should fail validation for nil request", func(t *testing.T) {
		var req *request.DeliveryRequest

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, request.ErrRequestIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value request", func(t *testing.T) {
		var req request.DeliveryRequest

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, request.ErrRequestIsNotConstructed, err)
	})
}

func TestDeliveryRequest_IsEqual(t *testing.T) {
	weight, _ := kernel.NewWeight(25)
	id := kernel.NewUUID()

	t.Run("should compare by identity", func(t *testing.T) {
		req1, _ := request.NewDeliveryRequest(id, kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")
		req2, _ := request.NewDeliveryRequest(id, kernel.NewUUID(), kernel.NewUUID(), weight, "c", "d")
		req3, _ := request.NewDeliveryRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), weight, "a", "b")

		assert.True(t, req1.IsEqual(req2))
		assert.False(t, req1.IsEqual(req3))
		assert.False(t, req1.IsEqual(nil))
	})
}
