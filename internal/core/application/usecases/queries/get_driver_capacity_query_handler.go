package queries

import (
	"context"
	"database/sql"
	"errors"

	"freshly/internal/core/domain/model/request"
	"freshly/internal/pkg/errs"

	"gorm.io/gorm"
)

// DriverCapacityResponse is the capacity snapshot for one driver. Both
// numbers are point-in-time values: the load may change before any
// subsequent accept attempt.
type DriverCapacityResponse struct {
	VehicleCapacity    float64
	CurrentTotalWeight float64
}

// GetDriverCapacityQueryHandler reads a driver's capacity headroom.
type GetDriverCapacityQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverCapacityQueryHandler creates the handler.
func NewGetDriverCapacityQueryHandler(db *gorm.DB) GetDriverCapacityQueryHandler {
	return GetDriverCapacityQueryHandler{db: db}
}

// Handle returns the driver's vehicle capacity and the summed weight of
// their accepted, undelivered requests.
func (h GetDriverCapacityQueryHandler) Handle(
	ctx context.Context,
	query GetDriverCapacityQuery,
) (DriverCapacityResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverCapacityResponse{}, err
	}

	var resp DriverCapacityResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT vehicle_capacity
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Row()
	if err := row.Scan(&resp.VehicleCapacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DriverCapacityResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
		}
		return DriverCapacityResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(weight), 0)
		FROM delivery_requests
		WHERE driver_id = ? AND status = ?
	`, query.DriverID().Bytes(), int(request.Accepted)).Row()
	if err := row.Scan(&resp.CurrentTotalWeight); err != nil {
		return DriverCapacityResponse{}, err
	}

	return resp, nil
}
