package services

import (
	"errors"
	"fmt"

	"freshly/internal/core/domain/model/driver"
	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
)

// ErrCapacityExceeded is the sentinel every CapacityExceededError unwraps
// to, so callers can classify the failure with errors.Is.
var ErrCapacityExceeded = errors.New("vehicle capacity exceeded")

// CapacityExceededError reports an admission rejection. The three weights
// are part of the caller-facing contract: clients display them so the user
// can see the shortfall, so they must survive all the way to the API edge.
type CapacityExceededError struct {
	CurrentLoad     kernel.Weight
	RequestWeight   kernel.Weight
	VehicleCapacity kernel.Weight
}

// NewCapacityExceededError creates a CapacityExceededError carrying the
// load, request weight, and capacity that produced the rejection.
func NewCapacityExceededError(currentLoad, requestWeight, vehicleCapacity kernel.Weight) *CapacityExceededError {
	return &CapacityExceededError{
		CurrentLoad:     currentLoad,
		RequestWeight:   requestWeight,
		VehicleCapacity: vehicleCapacity,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: current load %s plus request %s is over capacity %s",
		ErrCapacityExceeded, e.CurrentLoad, e.RequestWeight, e.VehicleCapacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// CapacityAdmission decides whether a driver may take on a pending delivery
// request. It is a pure domain service: the caller supplies the driver, the
// driver's current committed load, and the candidate request, and the
// service answers yes or no. Reading the load consistently and persisting
// the resulting transition atomically is the command handler's job.
type CapacityAdmission struct{}

// NewCapacityAdmission creates the admission service.
func NewCapacityAdmission() CapacityAdmission {
	return CapacityAdmission{}
}

// Admit checks that accepting req keeps the driver's committed load within
// the vehicle capacity. A load landing exactly on the capacity is admitted;
// only strictly exceeding it is rejected, with a CapacityExceededError
// carrying the diagnostic weights.
//
// Admit does not mutate anything. On success the caller transitions the
// request with DeliveryRequest.Accept.
func (CapacityAdmission) Admit(d *driver.Driver, currentLoad kernel.Weight, req *request.DeliveryRequest) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := currentLoad.Validate(); err != nil {
		return err
	}
	if err := req.ValidateAccept(); err != nil {
		return err
	}

	if currentLoad.Add(req.Weight()).Exceeds(d.VehicleCapacity()) {
		return NewCapacityExceededError(currentLoad, req.Weight(), d.VehicleCapacity())
	}

	return nil
}
