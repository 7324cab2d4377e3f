package commands

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand asks the system to complete an accepted request,
// releasing its weight from the driver's committed load.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand validates and builds the command.
func NewMarkDeliveredCommand(driverID kernel.UUID, requestID kernel.UUID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setRequestID(requestID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

func (c MarkDeliveredCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c MarkDeliveredCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *MarkDeliveredCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *MarkDeliveredCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
