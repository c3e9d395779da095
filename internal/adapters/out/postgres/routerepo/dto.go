// Package routerepo provides data transfer objects and mapping functions
// for route persistence. Routes are immutable reference data; the repository
// only ever inserts and reads.
package routerepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:text"`
	StartPoint        string    `gorm:"type:text"`
	EndPoint          string    `gorm:"type:text"`
	EstimatedDuration int
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		StartPoint:        aggregate.StartPoint(),
		EndPoint:          aggregate.EndPoint(),
		EstimatedDuration: aggregate.EstimatedDuration(),
	}
}

// toDomain converts a database DTO to a route domain aggregate.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Name, dto.StartPoint, dto.EndPoint, dto.EstimatedDuration)
}
