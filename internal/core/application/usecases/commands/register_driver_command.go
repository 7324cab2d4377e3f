package commands

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// RegisterDriverCommand asks the system to register a new driver with a
// vehicle of the given capacity.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	name            string
	phone           string
	vehicleCapacity kernel.Weight

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand validates and builds the command. The driver id
// is generated here so callers learn it from the command they submitted.
func NewRegisterDriverCommand(name string, phone string, vehicleCapacity kernel.Weight) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setVehicleCapacity(vehicleCapacity),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

func (c RegisterDriverCommand) VehicleCapacity() kernel.Weight {
	return c.vehicleCapacity
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterDriverCommand) setVehicleCapacity(vehicleCapacity kernel.Weight) error {
	if err := vehicleCapacity.Validate(); err != nil {
		return err
	}

	c.vehicleCapacity = vehicleCapacity
	return nil
}
