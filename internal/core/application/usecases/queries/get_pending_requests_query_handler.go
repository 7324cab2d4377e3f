package queries

import (
	"context"
	"errors"
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRoleIsNotAllowed is returned when the caller's role is not one of the
// roles the pending listing recognizes.
var ErrRoleIsNotAllowed = errors.New("role is not allowed to list pending requests")

// PendingRequestResponse is one row of the pending listing.
type PendingRequestResponse struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	FarmerID  kernel.UUID
	Weight    float64
	Pickup    string
	DropOff   string
	CreatedAt time.Time
}

// roleScope is the filter predicate a caller's role translates to. Drivers
// see the whole pending pool; buyers and farmers only their own requests.
type roleScope struct {
	condition string
	args      []any
}

// scopeForRole is the pure dispatch from role to filter predicate.
func scopeForRole(role kernel.Role, callerID kernel.UUID) (roleScope, error) {
	switch role {
	case kernel.RoleDriver:
		return roleScope{}, nil
	case kernel.RoleBuyer:
		return roleScope{condition: " AND buyer_id = ?", args: []any{callerID.Bytes()}}, nil
	case kernel.RoleFarmer:
		return roleScope{condition: " AND farmer_id = ?", args: []any{callerID.Bytes()}}, nil
	default:
		return roleScope{}, ErrRoleIsNotAllowed
	}
}

// GetPendingRequestsQueryHandler reads the pending pool, newest first.
// It is a pure read: a listed request may legitimately be gone by the time
// the caller tries to accept it.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsQueryHandler creates the handler.
func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

// Handle returns the pending requests visible to the caller, ordered by
// creation time descending.
func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]PendingRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := scopeForRole(query.Role(), query.CallerID())
	if err != nil {
		return nil, err
	}

	args := append([]any{int(request.Pending)}, scope.args...)
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
		WHERE status = ?`+scope.condition+`
		ORDER BY created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]PendingRequestResponse, 0)
	for rows.Next() {
		var (
			id, buyerID, farmerID uuid.UUID
			resp                  PendingRequestResponse
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
