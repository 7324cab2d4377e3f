package commands

import (
	"context"
	"errors"

	"freshly/internal/core/domain/model/request"
	"freshly/internal/core/ports"
)

// CancelStaleRequestsCommandHandler expires pending requests that nobody
// accepted within the configured time-to-live.
type CancelStaleRequestsCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCancelStaleRequestsCommandHandler creates the handler.
func NewCancelStaleRequestsCommandHandler(uowFactory RequestUoWFactory) CancelStaleRequestsCommandHandler {
	return CancelStaleRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every stale pending request and returns how many were
// cancelled. Each cancellation uses the conditional transition, so a
// request a driver accepts mid-sweep is left alone rather than cancelled.
func (h CancelStaleRequestsCommandHandler) Handle(
	ctx context.Context,
	command CancelStaleRequestsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	stale, err := requestRepo.GetStalePending(ctx, command.Before())
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, req := range stale {
		if err = req.Cancel(); err != nil {
			return 0, err
		}

		err = requestRepo.TransitionFrom(ctx, req, request.Pending)
		if errors.Is(err, ports.ErrConcurrentTransition) {
			// A driver accepted it between the sweep query and now.
			continue
		}
		if err != nil {
			return 0, err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
