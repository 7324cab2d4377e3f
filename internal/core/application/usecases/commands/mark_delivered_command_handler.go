package commands

import (
	"context"
	"errors"

	"freshly/internal/core/domain/model/request"
)

// ErrRequestNotOwnedByDriver is returned when a driver tries to complete a
// request that was accepted by somebody else.
var ErrRequestNotOwnedByDriver = errors.New("request is not owned by this driver")

// MarkDeliveredCommandHandler moves an accepted request to Delivered.
type MarkDeliveredCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewMarkDeliveredCommandHandler creates the handler.
func NewMarkDeliveredCommandHandler(uowFactory RequestUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes the shipment. Only the driver who accepted the request
// may deliver it; the transition uses the same conditional persist as
// acceptance, so a concurrent transition is surfaced instead of overwritten.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	command MarkDeliveredCommand,
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

	requestRepo := uow.RequestRepository()

	req, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}
	if req.Driver() == nil || !req.Driver().IsEqual(command.DriverID()) {
		return nil, ErrRequestNotOwnedByDriver
	}

	if err = req.Deliver(); err != nil {
		return nil, err
	}

	if err = requestRepo.TransitionFrom(ctx, req, request.Accepted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
