package commands

import (
	"context"

	"freshly/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler persists new drivers.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates the handler.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the driver and returns the created aggregate.
func (h RegisterDriverCommandHandler) Handle(
	ctx context.Context,
	command RegisterDriverCommand,
) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	drv, err := driver.NewDriver(
		command.DriverID(),
		command.Name(),
		command.Phone(),
		command.VehicleCapacity(),
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

	if err = uow.DriverRepository().Add(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
