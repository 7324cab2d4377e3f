package request

import (
	"errors"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/errs"
	"freshly/internal/pkg/guard"
)

// Domain errors for delivery request operations.
var (
	// ErrRequestIsNotConstructed is returned when a DeliveryRequest was not
	// created through NewDeliveryRequest or RestoreDeliveryRequest.
	ErrRequestIsNotConstructed = errors.New(
		"DeliveryRequest must be created via NewDeliveryRequest constructor")

	// ErrPickupIsRequired is returned when a request is created without a
	// pickup location.
	ErrPickupIsRequired = errs.NewValueIsRequiredError("pickup")

	// ErrDropOffIsRequired is returned when a request is created without a
	// drop-off location.
	ErrDropOffIsRequired = errs.NewValueIsRequiredError("dropOff")
)

// DeliveryRequest is the aggregate at the heart of the delivery subsystem:
// a buyer's ask to move a shipment of produce from a farmer's pickup point
// to a drop-off location.
//
// A request is born Pending with no driver. A driver accepting it stamps
// their id and moves it to Accepted, at which point its weight counts
// against that driver's vehicle capacity until the shipment is Delivered.
// Pending requests that nobody accepts can be Cancelled.
//
// The aggregate enforces its own transition rules; whether a driver has the
// spare capacity to accept is decided by the CapacityAdmission domain
// service, which sees the driver's whole committed load.
type DeliveryRequest struct {
	// id uniquely identifies the shipment
	id kernel.UUID
	// buyerID references the buyer who created the request
	buyerID kernel.UUID
	// farmerID references the farmer whose produce is being shipped
	farmerID kernel.UUID
	// driverID is the accepting driver's id (nil while Pending)
	driverID *kernel.UUID
	// weight is the shipment payload weight
	weight kernel.Weight
	// pickup and dropOff are opaque location descriptors
	pickup  string
	dropOff string
	// status is the current position in the request lifecycle
	status Status
	// createdAt orders listings, newest first
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryRequest creates a Pending request on behalf of a buyer.
// All identifiers and the weight must be valid, and both location
// descriptors must be non-empty.
func NewDeliveryRequest(
	id kernel.UUID,
	buyerID kernel.UUID,
	farmerID kernel.UUID,
	weight kernel.Weight,
	pickup string,
	dropOff string,
) (*DeliveryRequest, error) {
	req := &DeliveryRequest{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		req.setID(id),
		req.setBuyerID(buyerID),
		req.setFarmerID(farmerID),
		req.setWeight(weight),
		req.setPickup(pickup),
		req.setDropOff(dropOff),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// RestoreDeliveryRequest reconstructs a request from persistent storage,
// preserving its status, driver assignment, and creation time. The
// status/driver coherence rule is re-checked so corrupt rows cannot become
// live aggregates.
func RestoreDeliveryRequest(
	id kernel.UUID,
	buyerID kernel.UUID,
	farmerID kernel.UUID,
	driverID *kernel.UUID,
	weight kernel.Weight,
	pickup string,
	dropOff string,
	status Status,
	createdAt time.Time,
) (*DeliveryRequest, error) {
	req := &DeliveryRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		req.setID(id),
		req.setBuyerID(buyerID),
		req.setFarmerID(farmerID),
		req.setWeight(weight),
		req.setPickup(pickup),
		req.setDropOff(dropOff),
		req.setStatus(status),
		req.setDriverID(driverID),
		req.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate reports whether the request was built through a constructor.
func (r *DeliveryRequest) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares requests by identity.
func (r *DeliveryRequest) IsEqual(other *DeliveryRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the shipment identifier.
func (r *DeliveryRequest) ID() kernel.UUID {
	return r.id
}

// BuyerID returns the requesting buyer's id.
func (r *DeliveryRequest) BuyerID() kernel.UUID {
	return r.buyerID
}

// FarmerID returns the shipping farmer's id.
func (r *DeliveryRequest) FarmerID() kernel.UUID {
	return r.farmerID
}

// Driver returns the accepting driver's id, or nil while the request is
// Pending or Cancelled.
func (r *DeliveryRequest) Driver() *kernel.UUID {
	return r.driverID
}

// Weight returns the shipment payload weight.
func (r *DeliveryRequest) Weight() kernel.Weight {
	return r.weight
}

// Pickup returns the pickup location descriptor.
func (r *DeliveryRequest) Pickup() string {
	return r.pickup
}

// DropOff returns the drop-off location descriptor.
func (r *DeliveryRequest) DropOff() string {
	return r.dropOff
}

// Status returns the current lifecycle status.
func (r *DeliveryRequest) Status() Status {
	return r.status
}

// CreatedAt returns the creation timestamp (UTC).
func (r *DeliveryRequest) CreatedAt() time.Time {
	return r.createdAt
}

// ValidateAccept reports whether the request is currently acceptable,
// without changing it.
func (r *DeliveryRequest) ValidateAccept() error {
	return r.status.ValidateAccept()
}

// Accept commits the request to a driver. Only Pending requests can be
// accepted; the capacity decision has already been made by the caller.
func (r *DeliveryRequest) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.driverID = &driverID
	return nil
}

// Deliver marks an accepted request as completed, releasing its weight
// from the driver's committed load.
func (r *DeliveryRequest) Deliver() error {
	newStatus, err := r.status.Deliver()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel withdraws a request nobody has accepted.
func (r *DeliveryRequest) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *DeliveryRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *DeliveryRequest) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	r.buyerID = buyerID
	return nil
}

func (r *DeliveryRequest) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	r.farmerID = farmerID
	return nil
}

// setDriverID relies on the status being set first so the coherence rule
// can be checked against the final state.
func (r *DeliveryRequest) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	if err := r.status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return err
	}

	r.driverID = driverID
	return nil
}

func (r *DeliveryRequest) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if !weight.Exceeds(kernel.ZeroWeight()) {
		return errs.NewValueIsRequiredError("weight")
	}

	r.weight = weight
	return nil
}

func (r *DeliveryRequest) setPickup(pickup string) error {
	if pickup == "" {
		return ErrPickupIsRequired
	}

	r.pickup = pickup
	return nil
}

func (r *DeliveryRequest) setDropOff(dropOff string) error {
	if dropOff == "" {
		return ErrDropOffIsRequired
	}

	r.dropOff = dropOff
	return nil
}

func (r *DeliveryRequest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	r.status = status
	return nil
}

func (r *DeliveryRequest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	r.createdAt = createdAt.UTC()
	return nil
}
