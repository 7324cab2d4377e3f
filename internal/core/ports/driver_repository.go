package ports

import (
	"context"

	"freshly/internal/core/domain/model/driver"
	"freshly/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for Driver aggregates.
// The core mostly reads drivers; Add exists so the subsystem can register
// drivers on its own.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id.
	// Returns an ObjectNotFoundError when the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver and takes an exclusive row lock held
	// until the surrounding transaction ends. All admission attempts for
	// one driver serialize on this lock, so two concurrent accepts can
	// never both read a stale load and jointly overshoot the capacity.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
