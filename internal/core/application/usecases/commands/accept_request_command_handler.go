package commands

import (
	"context"
	"errors"

	"freshly/internal/core/domain/model/request"
	"freshly/internal/core/domain/services"
	"freshly/internal/core/ports"
)

// ErrRequestAlreadyTaken is returned when the target request exists but is
// no longer pending, typically because another driver accepted it first.
var ErrRequestAlreadyTaken = errors.New("request already taken by another caller")

// AcceptRequestCommandHandler runs the capacity admission flow: it decides
// whether the driver may take the request and, if so, performs the
// Pending -> Accepted transition as one atomic unit.
//
// Two races are closed inside the transaction. GetForUpdate takes a row
// lock on the driver, so all admission attempts for the same driver
// serialize and the load sum can never be read stale. TransitionFrom
// persists the acceptance only if the stored request is still pending, so
// two drivers fighting over one request produce exactly one winner.
type AcceptRequestCommandHandler struct {
	uowFactory UoWFactory
	admission  services.CapacityAdmission
}

// NewAcceptRequestCommandHandler creates the handler.
func NewAcceptRequestCommandHandler(uowFactory UoWFactory) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
		admission:  services.NewCapacityAdmission(),
	}
}

// Handle accepts the request for the driver and returns the accepted
// aggregate. Failures leave no partial state: the transaction rolls back
// and the caller may retry from a fresh pending list.
func (h AcceptRequestCommandHandler) Handle(
	ctx context.Context,
	command AcceptRequestCommand,
) (*request.DeliveryRequest, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	requestRepo := uow.RequestRepository()

	// The row lock serializes all of this driver's admission attempts.
	drv, err := driverRepo.GetForUpdate(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	req, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}
	if req.Status() != request.Pending {
		return nil, ErrRequestAlreadyTaken
	}

	currentLoad, err := requestRepo.GetAcceptedWeight(ctx, drv.ID())
	if err != nil {
		return nil, err
	}

	if err = h.admission.Admit(drv, currentLoad, req); err != nil {
		return nil, err
	}

	if err = req.Accept(drv.ID()); err != nil {
		return nil, err
	}

	if err = requestRepo.TransitionFrom(ctx, req, request.Pending); err != nil {
		if errors.Is(err, ports.ErrConcurrentTransition) {
			return nil, ErrRequestAlreadyTaken
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
