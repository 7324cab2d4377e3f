package commands_test

import (
	"testing"

	"freshly/internal/core/application/usecases/commands"
	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
	"freshly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildAcceptedRequest(t *testing.T, id kernel.UUID, driverID kernel.UUID) *request.DeliveryRequest {
	t.Helper()
	req := buildPendingRequest(t, id, 25)
	require.NoError(t, req.Accept(driverID))
	return req
}

func TestMarkDeliveredCommandHandler_Handle(t *testing.T) {
	t.Run("should deliver request owned by the driver", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		requestID := kernel.NewUUID()
		req := buildAcceptedRequest(t, requestID, driverID)

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("Get", ctx, requestID).Return(req, nil).Once(),
			requestRepo.On("TransitionFrom", ctx, req, request.Accepted).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		command, err := commands.NewMarkDeliveredCommand(driverID, requestID)
		require.NoError(t, err)

		delivered, err := handler.Handle(ctx, command)

		require.NoError(t, err)
		require.NotNil(t, delivered)
		assert.Equal(t, request.Delivered, delivered.Status())
		require.NotNil(t, delivered.Driver())
		assert.True(t, delivered.Driver().IsEqual(driverID))
		factory.AssertExpectations(t)
		uow.AssertExpectations(t)
		requestRepo.AssertExpectations(t)
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		factory := &MockRequestUoWFactory{}
		handler := commands.NewMarkDeliveredCommandHandler(factory)

		var command commands.MarkDeliveredCommand
		delivered, err := handler.Handle(t.Context(), command)

		require.Error(t, err)
		assert.Nil(t, delivered)
		assert.Equal(t, commands.ErrMarkDeliveredCommandIsNotConstructed, err)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should fail when request does not exist", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		requestID := kernel.NewUUID()
		notFound := errs.NewObjectNotFoundError("request", requestID.String())

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("Get", ctx, requestID).Return(nil, notFound).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		command, err := commands.NewMarkDeliveredCommand(driverID, requestID)
		require.NoError(t, err)

		delivered, err := handler.Handle(ctx, command)

		require.Error(t, err)
		assert.Nil(t, delivered)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail when another driver owns the request", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		requestID := kernel.NewUUID()
		req := buildAcceptedRequest(t, requestID, kernel.NewUUID())

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("Get", ctx, requestID).Return(req, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		command, err := commands.NewMarkDeliveredCommand(driverID, requestID)
		require.NoError(t, err)

		delivered, err := handler.Handle(ctx, command)

		require.Error(t, err)
		assert.Nil(t, delivered)
		assert.ErrorIs(t, err, commands.ErrRequestNotOwnedByDriver)
		assert.Equal(t, request.Accepted, req.Status())
		requestRepo.AssertNotCalled(t, "TransitionFrom", ctx, req, request.Accepted)
	})

	t.Run("should fail when request is still pending", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		requestID := kernel.NewUUID()
		req := buildPendingRequest(t, requestID, 25)

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("Get", ctx, requestID).Return(req, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewMarkDeliveredCommandHandler(factory)
		command, err := commands.NewMarkDeliveredCommand(driverID, requestID)
		require.NoError(t, err)

		delivered, err := handler.Handle(ctx, command)

		require.Error(t, err)
		assert.Nil(t, delivered)
		assert.ErrorIs(t, err, commands.ErrRequestNotOwnedByDriver)
	})
}

func TestNewMarkDeliveredCommand(t *testing.T) {
	t.Run("should create command with valid ids", func(t *testing.T) {
		driverID := kernel.NewUUID()
		requestID := kernel.NewUUID()

		command, err := commands.NewMarkDeliveredCommand(driverID, requestID)

		require.NoError(t, err)
		require.NoError(t, command.Validate())
		assert.True(t, command.DriverID().IsEqual(driverID))
		assert.True(t, command.RequestID().IsEqual(requestID))
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewMarkDeliveredCommand(invalidID, invalidID)

		require.Error(t, err)
	})
}
