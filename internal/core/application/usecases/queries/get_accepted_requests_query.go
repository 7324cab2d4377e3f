package queries

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var ErrGetAcceptedRequestsQueryIsNotConstructed = errors.New(
	"GetAcceptedRequestsQuery must be created via NewGetAcceptedRequestsQuery constructor",
)

// GetAcceptedRequestsQuery lists the requests a driver has committed to.
type GetAcceptedRequestsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAcceptedRequestsQuery validates and builds the query.
func NewGetAcceptedRequestsQuery(driverID kernel.UUID) (GetAcceptedRequestsQuery, error) {
	query := GetAcceptedRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetAcceptedRequestsQuery{}, err
	}

	return query, nil
}

func (q GetAcceptedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAcceptedRequestsQueryIsNotConstructed)
}

func (q GetAcceptedRequestsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetAcceptedRequestsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}
