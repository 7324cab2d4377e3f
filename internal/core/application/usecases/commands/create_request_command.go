package commands

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var (
	ErrCreateDeliveryRequestCommandIsNotConstructed = errors.New(
		"CreateDeliveryRequestCommand must be created via NewCreateDeliveryRequestCommand constructor",
	)
	ErrPickupIsRequired  = errors.New("pickup is required")
	ErrDropOffIsRequired = errors.New("dropOff is required")
)

// CreateDeliveryRequestCommand asks the system to create a pending delivery
// request on behalf of a buyer. The buyer's identity is an explicit field,
// never ambient state.
type CreateDeliveryRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	buyerID   kernel.UUID
	farmerID  kernel.UUID
	weight    kernel.Weight
	pickup    string
	dropOff   string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryRequestCommand validates and builds the command.
func NewCreateDeliveryRequestCommand(
	requestID kernel.UUID,
	buyerID kernel.UUID,
	farmerID kernel.UUID,
	weight kernel.Weight,
	pickup string,
	dropOff string,
) (CreateDeliveryRequestCommand, error) {
	command := CreateDeliveryRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setBuyerID(buyerID),
		command.setFarmerID(farmerID),
		command.setWeight(weight),
		command.setPickup(pickup),
		command.setDropOff(dropOff),
	); err != nil {
		return CreateDeliveryRequestCommand{}, err
	}

	return command, nil
}

func (c CreateDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryRequestCommandIsNotConstructed)
}

func (c CreateDeliveryRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateDeliveryRequestCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c CreateDeliveryRequestCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c CreateDeliveryRequestCommand) Weight() kernel.Weight {
	return c.weight
}

func (c CreateDeliveryRequestCommand) Pickup() string {
	return c.pickup
}

func (c CreateDeliveryRequestCommand) DropOff() string {
	return c.dropOff
}

func (c *CreateDeliveryRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateDeliveryRequestCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateDeliveryRequestCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	c.farmerID = farmerID
	return nil
}

func (c *CreateDeliveryRequestCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateDeliveryRequestCommand) setPickup(pickup string) error {
	if pickup == "" {
		return ErrPickupIsRequired
	}

	c.pickup = pickup
	return nil
}

func (c *CreateDeliveryRequestCommand) setDropOff(dropOff string) error {
	if dropOff == "" {
		return ErrDropOffIsRequired
	}

	c.dropOff = dropOff
	return nil
}
