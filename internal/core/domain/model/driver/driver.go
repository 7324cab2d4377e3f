package driver

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/errs"
	"freshly/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver with a vehicle of fixed capacity.
//
// The driver's identity lives in the marketplace's identity subsystem; this
// model carries only what admission control needs: who the driver is and
// how much weight their vehicle can hold. The capacity is the upper bound
// on the summed weight of all requests the driver has accepted and not yet
// delivered. The admission decision itself belongs to the CapacityAdmission
// service, which reads the capacity through this aggregate.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's display name
	name string
	// phone is the driver's contact number, shown to counterparties
	phone string
	// vehicleCapacity bounds the summed weight of accepted requests
	vehicleCapacity kernel.Weight

	guard guard.ConstructorGuard
}

// NewDriver creates a driver with the given identity and vehicle capacity.
// The capacity must be a positive weight.
func NewDriver(id kernel.UUID, name string, phone string, vehicleCapacity kernel.Weight) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicleCapacity(vehicleCapacity),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, phone string, vehicleCapacity kernel.Weight) (*Driver, error) {
	return NewDriver(id, name, phone, vehicleCapacity)
}

// Validate reports whether the Driver was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleCapacity returns the maximum total weight the driver may carry
// across all currently accepted requests.
func (d *Driver) VehicleCapacity() kernel.Weight {
	return d.vehicleCapacity
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	d.phone = phone
	return nil
}

func (d *Driver) setVehicleCapacity(vehicleCapacity kernel.Weight) error {
	if err := vehicleCapacity.Validate(); err != nil {
		return err
	}
	if !vehicleCapacity.Exceeds(kernel.ZeroWeight()) {
		return errs.NewValueIsRequiredError("vehicleCapacity")
	}

	d.vehicleCapacity = vehicleCapacity
	return nil
}
