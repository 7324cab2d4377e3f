package commands_test

import (
	"errors"
	"testing"
	"time"

	"freshly/internal/core/application/usecases/commands"
	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
	"freshly/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelStaleRequestsCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel every stale pending request", func(t *testing.T) {
		ctx := t.Context()
		before := time.Now().UTC().Add(-30 * time.Minute)
		first := buildPendingRequest(t, kernel.NewUUID(), 10)
		second := buildPendingRequest(t, kernel.NewUUID(), 20)

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("GetStalePending", ctx, before).
				Return([]*request.DeliveryRequest{first, second}, nil).Once(),
			requestRepo.On("TransitionFrom", ctx, first, request.Pending).Return(nil).Once(),
			requestRepo.On("TransitionFrom", ctx, second, request.Pending).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCancelStaleRequestsCommandHandler(factory)
		command, err := commands.NewCancelStaleRequestsCommand(before)
		require.NoError(t, err)

		cancelled, err := handler.Handle(ctx, command)

		require.NoError(t, err)
		assert.Equal(t, 2, cancelled)
		assert.Equal(t, request.Cancelled, first.Status())
		assert.Equal(t, request.Cancelled, second.Status())
		requestRepo.AssertExpectations(t)
	})

	t.Run("should skip request accepted mid-sweep", func(t *testing.T) {
		ctx := t.Context()
		before := time.Now().UTC().Add(-30 * time.Minute)
		stale := buildPendingRequest(t, kernel.NewUUID(), 10)
		contested := buildPendingRequest(t, kernel.NewUUID(), 20)

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("GetStalePending", ctx, before).
				Return([]*request.DeliveryRequest{stale, contested}, nil).Once(),
			requestRepo.On("TransitionFrom", ctx, stale, request.Pending).Return(nil).Once(),
			requestRepo.On("TransitionFrom", ctx, contested, request.Pending).
				Return(ports.ErrConcurrentTransition).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCancelStaleRequestsCommandHandler(factory)
		command, err := commands.NewCancelStaleRequestsCommand(before)
		require.NoError(t, err)

		cancelled, err := handler.Handle(ctx, command)

		require.NoError(t, err)
		assert.Equal(t, 1, cancelled)
	})

	t.Run("should report zero when nothing is stale", func(t *testing.T) {
		ctx := t.Context()
		before := time.Now().UTC().Add(-30 * time.Minute)

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("GetStalePending", ctx, before).
				Return([]*request.DeliveryRequest{}, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCancelStaleRequestsCommandHandler(factory)
		command, err := commands.NewCancelStaleRequestsCommand(before)
		require.NoError(t, err)

		cancelled, err := handler.Handle(ctx, command)

		require.NoError(t, err)
		assert.Equal(t, 0, cancelled)
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		factory := &MockRequestUoWFactory{}
		handler := commands.NewCancelStaleRequestsCommandHandler(factory)

		var command commands.CancelStaleRequestsCommand
		cancelled, err := handler.Handle(t.Context(), command)

		require.Error(t, err)
		assert.Equal(t, 0, cancelled)
		assert.Equal(t, commands.ErrCancelStaleRequestsCommandIsNotConstructed, err)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should fail when the sweep query fails", func(t *testing.T) {
		ctx := t.Context()
		before := time.Now().UTC().Add(-30 * time.Minute)
		queryErr := errors.New("query failed")

		requestRepo := &MockRequestRepository{}
		uow := &MockUoW{}
		factory := &MockRequestUoWFactory{}

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("RequestRepository").Return(requestRepo).Once(),
			requestRepo.On("GetStalePending", ctx, before).Return(nil, queryErr).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCancelStaleRequestsCommandHandler(factory)
		command, err := commands.NewCancelStaleRequestsCommand(before)
		require.NoError(t, err)

		cancelled, err := handler.Handle(ctx, command)

		require.Error(t, err)
		assert.Equal(t, 0, cancelled)
		assert.Equal(t, queryErr, err)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestNewCancelStaleRequestsCommand(t *testing.T) {
	t.Run("should create command with valid cutoff", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Hour)

		command, err := commands.NewCancelStaleRequestsCommand(before)

		require.NoError(t, err)
		require.NoError(t, command.Validate())
		assert.Equal(t, before, command.Before())
	})

	t.Run("should fail with zero cutoff", func(t *testing.T) {
		_, err := commands.NewCancelStaleRequestsCommand(time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "before")
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var command commands.CancelStaleRequestsCommand

		err := command.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrCancelStaleRequestsCommandIsNotConstructed, err)
	})
}
