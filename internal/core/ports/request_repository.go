// Package ports defines the persistence contracts of the delivery core.
// These interfaces sit between the application layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
)

// ErrConcurrentTransition is returned by TransitionFrom when the stored
// request left the expected status between read and write, meaning a
// concurrent caller won the transition race.
var ErrConcurrentTransition = errors.New("request status changed concurrently")

// RequestRepository defines the persistence contract for DeliveryRequest
// aggregates.
type RequestRepository interface {
	// Add persists a new delivery request.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.DeliveryRequest) error

	// Get retrieves a delivery request by its shipment identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error)

	// TransitionFrom persists the aggregate's current state on the
	// condition that the stored row is still in the given status. This is
	// the compare-and-swap that makes every lifecycle transition race
	// free: at most one concurrent caller can move a request out of a
	// status. Returns an ObjectNotFoundError when no row exists and
	// ErrConcurrentTransition when the row exists in a different status.
	TransitionFrom(ctx context.Context, aggregate *request.DeliveryRequest, from request.Status) error

	// GetAcceptedWeight sums the weight of all requests the driver has
	// accepted and not yet delivered. This is the driver's committed load.
	GetAcceptedWeight(ctx context.Context, driverID kernel.UUID) (kernel.Weight, error)

	// GetStalePending retrieves pending requests created before the given
	// cutoff, oldest first. Used by the expiry job.
	GetStalePending(ctx context.Context, before time.Time) ([]*request.DeliveryRequest, error)
}
