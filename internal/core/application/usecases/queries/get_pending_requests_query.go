package queries

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery lists the pending pool as seen by one caller.
// The caller's identity and role are explicit fields; which subset they see
// is decided by the role filter in the handler.
type GetPendingRequestsQuery struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery validates and builds the query.
func NewGetPendingRequestsQuery(callerID kernel.UUID, role kernel.Role) (GetPendingRequestsQuery, error) {
	query := GetPendingRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCallerID(callerID),
		query.setRole(role),
	); err != nil {
		return GetPendingRequestsQuery{}, err
	}

	return query, nil
}

func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}

func (q GetPendingRequestsQuery) CallerID() kernel.UUID {
	return q.callerID
}

func (q GetPendingRequestsQuery) Role() kernel.Role {
	return q.role
}

func (q *GetPendingRequestsQuery) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	q.callerID = callerID
	return nil
}

func (q *GetPendingRequestsQuery) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}
