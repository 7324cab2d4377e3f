package requestrepo

import (
	"time"

	"freshly/internal/core/domain/model/kernel"
	"freshly/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO is the database representation of a delivery request. The
// whole lifecycle lives in one table; the status column is the state
// machine, not separate pending/accepted collections.
type RequestDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID  `gorm:"type:uuid;index"`
	FarmerID  uuid.UUID  `gorm:"type:uuid;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	Weight    float64
	Pickup    string
	DropOff   string
	Status    int       `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

func (RequestDTO) TableName() string {
	return "delivery_requests"
}

func fromDomain(aggregate *request.DeliveryRequest) RequestDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return RequestDTO{
		ID:        aggregate.ID().Bytes(),
		BuyerID:   aggregate.BuyerID().Bytes(),
		FarmerID:  aggregate.FarmerID().Bytes(),
		DriverID:  driverID,
		Weight:    aggregate.Weight().Kilograms(),
		Pickup:    aggregate.Pickup(),
		DropOff:   aggregate.DropOff(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RequestDTO) (*request.DeliveryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return request.RestoreDeliveryRequest(
		id,
		buyerID,
		farmerID,
		driverID,
		weight,
		dto.Pickup,
		dto.DropOff,
		request.Status(dto.Status),
		dto.CreatedAt,
	)
}
