package queries

import (
	"context"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcceptedRequestResponse is one row of a driver's committed load listing.
type AcceptedRequestResponse struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	FarmerID  kernel.UUID
	Weight    float64
	Pickup    string
	DropOff   string
	CreatedAt time.Time
}

// GetAcceptedRequestsQueryHandler reads the requests a driver has accepted
// and not yet delivered, newest first.
type GetAcceptedRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetAcceptedRequestsQueryHandler creates the handler.
func NewGetAcceptedRequestsQueryHandler(db *gorm.DB) GetAcceptedRequestsQueryHandler {
	return GetAcceptedRequestsQueryHandler{db: db}
}

// Handle returns the driver's accepted requests.
func (h GetAcceptedRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetAcceptedRequestsQuery,
) ([]AcceptedRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			farmer_id,
			weight,
			pickup,
			drop_off,
			created_at
		FROM delivery_requests
		WHERE status = ? AND driver_id = ?
		ORDER BY created_at DESC
	`, int(request.Accepted), query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]AcceptedRequestResponse, 0)
	for rows.Next() {
		var (
			id, buyerID, farmerID uuid.UUID
			resp                  AcceptedRequestResponse
		)
		if err = rows.Scan(
			&id,
			&buyerID,
			&farmerID,
			&resp.Weight,
			&resp.Pickup,
			&resp.DropOff,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}

		requests = append(requests, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
