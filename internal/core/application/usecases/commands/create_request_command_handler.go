package commands

import (
	"context"

	"freshly/internal/core/domain/model/request"
)

// CreateDeliveryRequestCommandHandler creates pending delivery requests.
type CreateDeliveryRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateDeliveryRequestCommandHandler creates the handler.
func NewCreateDeliveryRequestCommandHandler(uowFactory RequestUoWFactory) CreateDeliveryRequestCommandHandler {
	return CreateDeliveryRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new pending request and returns the created aggregate
// so the caller can render it back to the buyer.
func (h CreateDeliveryRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryRequestCommand,
) (*request.DeliveryRequest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	req, err := request.NewDeliveryRequest(
		cmd.RequestID(),
		cmd.BuyerID(),
		cmd.FarmerID(),
		cmd.Weight(),
		cmd.Pickup(),
		cmd.DropOff(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
