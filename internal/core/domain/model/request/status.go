package request

import (
	"fmt"

	"freshly/internal/pkg/errs"
)

// Status represents a delivery request's position in its lifecycle.
// Valid transitions are Pending -> Accepted -> Delivered and
// Pending -> Cancelled; nothing leaves a terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a buyer creates a request.
	// Pending requests sit in the shared pool any driver may accept from.
	Pending

	// Accepted indicates a driver has committed to the request. The
	// request's weight counts against that driver's vehicle capacity.
	Accepted

	// Delivered indicates the driver completed the shipment. Terminal;
	// the weight no longer counts against the driver's capacity.
	Delivered

	// Cancelled indicates the request was withdrawn before any driver
	// accepted it. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate rejects any status outside the recognized lifecycle.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAccept reports whether a request in this status may be accepted
// by a driver. Only Pending requests qualify.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver checks the status/driver coherence rule: Accepted
// and Delivered requests carry a driver, Pending and Cancelled do not.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != Accepted && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}
	if !hasDriver && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}
	return nil
}

// Accept returns the status after a driver commits to the request.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}
	return Accepted, nil
}

// Deliver returns the status after the driver completes the shipment.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel returns the status after a pending request is withdrawn.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
