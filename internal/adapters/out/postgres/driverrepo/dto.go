package driverrepo

import (
	"freshly/internal/core/domain/model/driver"
	"freshly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database representation of a driver.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	VehicleCapacity float64
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		VehicleCapacity: aggregate.VehicleCapacity().Kilograms(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewWeight(dto.VehicleCapacity)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, capacity)
}
