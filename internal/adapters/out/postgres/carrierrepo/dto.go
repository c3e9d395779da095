// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence.
package carrierrepo

import (
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. Indexed by availability so the fleet view can filter quickly.
type CarrierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text"`
	VehicleType string    `gorm:"type:text"`
	Capacity    int
	Available   bool `gorm:"index"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		VehicleType: aggregate.VehicleType(),
		Capacity:    aggregate.Capacity(),
		Available:   aggregate.Available(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.VehicleType, dto.Capacity, dto.Available)
}
