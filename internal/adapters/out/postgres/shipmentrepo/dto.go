// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipment row carries its package inline: the
// package is owned 1:1 by the shipment and never queried on its own.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by user, status, and tracking number to serve the
// read-side queries efficiently.
type ShipmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;index"`
	OriginAddress      string     `gorm:"type:text"`
	DestinationAddress string     `gorm:"type:text"`
	Status             int        `gorm:"index"`
	TrackingNumber     string     `gorm:"type:varchar(10);uniqueIndex"`
	RouteID            *uuid.UUID `gorm:"type:uuid;index"`
	CarrierID          *uuid.UUID `gorm:"type:uuid;index"`
	Package            PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PackageDTO represents the parcel columns embedded within the shipment table.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid"`
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	ProductType string `gorm:"type:text"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var routeID, carrierID *uuid.UUID
	if id := aggregate.Route(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}
	if id := aggregate.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	pkg := aggregate.Package()

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		UserID:             aggregate.UserID().Bytes(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		Status:             int(aggregate.Status()),
		TrackingNumber:     aggregate.TrackingNumber().String(),
		RouteID:            routeID,
		CarrierID:          carrierID,
		Package: PackageDTO{
			ID:          pkg.ID().Bytes(),
			Weight:      pkg.Weight(),
			Length:      pkg.Length(),
			Width:       pkg.Width(),
			Height:      pkg.Height(),
			ProductType: pkg.ProductType(),
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment, which re-validates the assignment consistency invariant.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	pkgID, err := kernel.UUIDFromBytes(dto.Package.ID[:])
	if err != nil {
		return nil, err
	}

	pkg, err := shipment.NewPackage(
		pkgID,
		dto.Package.Weight,
		dto.Package.Length,
		dto.Package.Width,
		dto.Package.Height,
		dto.Package.ProductType,
	)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	return shipment.RestoreShipment(
		id,
		userID,
		pkg,
		dto.OriginAddress,
		dto.DestinationAddress,
		shipment.Status(dto.Status),
		trackingNumber,
		routeID,
		carrierID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
