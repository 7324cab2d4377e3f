package queries

import (
	"errors"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/pkg/guard"
)

var ErrGetDriverCapacityQueryIsNotConstructed = errors.New(
	"GetDriverCapacityQuery must be created via NewGetDriverCapacityQuery constructor",
)

// GetDriverCapacityQuery reports a driver's vehicle capacity alongside the
// weight they currently carry.
type GetDriverCapacityQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverCapacityQuery validates and builds the query.
func NewGetDriverCapacityQuery(driverID kernel.UUID) (GetDriverCapacityQuery, error) {
	query := GetDriverCapacityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return GetDriverCapacityQuery{}, err
	}

	return query, nil
}

func (q GetDriverCapacityQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverCapacityQueryIsNotConstructed)
}

func (q GetDriverCapacityQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverCapacityQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	q.driverID = driverID
	return nil
}
