// Package requestrepo provides the GORM-backed delivery request repository.
package requestrepo

import (
	"context"
	"errors"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"
	"freshly/internal/core/ports"
	"freshly/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository persists DeliveryRequest aggregates.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a repository bound to the given
// connection or transaction.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new delivery request.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery request by its shipment identifier.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// TransitionFrom persists the aggregate's status and driver assignment on
// the condition that the stored row is still in the given status. The
// WHERE clause is the compare-and-swap: of any number of concurrent
// callers, exactly one finds the row in the expected status and wins.
func (r *GormRequestRepository) TransitionFrom(
	ctx context.Context,
	aggregate *request.DeliveryRequest,
	from request.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := from.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from)).
		Updates(map[string]any{
			"driver_id": dto.DriverID,
			"status":    dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost race.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&RequestDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("request", aggregate.ID().String())
		}
		return ports.ErrConcurrentTransition
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAcceptedWeight sums the weight of the driver's accepted, undelivered
// requests. Reading it inside the accepting transaction, under the
// driver's row lock, is what makes the admission check trustworthy.
func (r *GormRequestRepository) GetAcceptedWeight(ctx context.Context, driverID kernel.UUID) (kernel.Weight, error) {
	if err := driverID.Validate(); err != nil {
		return kernel.Weight{}, err
	}

	var total float64
	row := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(weight), 0)
		FROM delivery_requests
		WHERE driver_id = ? AND status = ?
	`, driverID.Bytes(), int(request.Accepted)).Row()
	if err := row.Scan(&total); err != nil {
		return kernel.Weight{}, err
	}

	if total == 0 {
		return kernel.ZeroWeight(), nil
	}
	return kernel.NewWeight(total)
}

// GetStalePending retrieves pending requests created before the cutoff,
// oldest first.
func (r *GormRequestRepository) GetStalePending(
	ctx context.Context,
	before time.Time,
) ([]*request.DeliveryRequest, error) {
	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ? AND created_at < ?", int(request.Pending), before).Error; err != nil {
		return nil, err
	}

	requests := make([]*request.DeliveryRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
