package commands

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand asks the system to commit a pending delivery request
// to a driver, subject to the capacity admission rule. The driver's
// identity is an explicit field, never ambient state.
type AcceptRequestCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRequestCommand validates and builds the command.
func NewAcceptRequestCommand(driverID kernel.UUID, requestID kernel.UUID) (AcceptRequestCommand, error) {
	command := AcceptRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setRequestID(requestID),
	); err != nil {
		return AcceptRequestCommand{}, err
	}

	return command, nil
}

func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

func (c AcceptRequestCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AcceptRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *AcceptRequestCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AcceptRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
