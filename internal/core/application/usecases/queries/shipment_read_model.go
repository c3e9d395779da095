// Package queries contains read-only operations over the shipping store.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain aggregates and read denormalized rows straight from the database
// for optimal read performance.
package queries

import (
	"database/sql"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentResponse is the read model shared by every shipment-listing query.
// Status is rendered as its wire string; route and carrier identifiers are
// nil until the shipment is assigned.
type ShipmentResponse struct {
	ID                 kernel.UUID
	UserID             kernel.UUID
	TrackingNumber     string
	Status             string
	OriginAddress      string
	DestinationAddress string
	Package            PackageResponse
	RouteID            *kernel.UUID
	CarrierID          *kernel.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PackageResponse carries the parcel columns of a shipment row.
type PackageResponse struct {
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	ProductType string
}

// selectShipmentColumns is the column list every shipment read scans, kept in
// one place so the scan helper and the queries cannot drift apart.
const selectShipmentColumns = `
	id,
	user_id,
	tracking_number,
	status,
	origin_address,
	destination_address,
	package_weight,
	package_length,
	package_width,
	package_height,
	package_product_type,
	route_id,
	carrier_id,
	created_at,
	updated_at
`

// scanShipmentRow scans one row produced with selectShipmentColumns.
func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, userID uuid.UUID
	var routeID, carrierID *uuid.UUID
	var status int

	err := rows.Scan(
		&id,
		&userID,
		&resp.TrackingNumber,
		&status,
		&resp.OriginAddress,
		&resp.DestinationAddress,
		&resp.Package.Weight,
		&resp.Package.Length,
		&resp.Package.Width,
		&resp.Package.Height,
		&resp.Package.ProductType,
		&routeID,
		&carrierID,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.UserID = ownerID

	resp.Status = shipment.Status(status).String()

	if routeID != nil {
		rID, rErr := kernel.UUIDFromBytes((*routeID)[:])
		if rErr != nil {
			return ShipmentResponse{}, rErr
		}
		resp.RouteID = &rID
	}

	if carrierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*carrierID)[:])
		if cErr != nil {
			return ShipmentResponse{}, cErr
		}
		resp.CarrierID = &cID
	}

	return resp, nil
}

// collectShipmentRows drains a result set of shipment rows.
func collectShipmentRows(rows *sql.Rows) ([]ShipmentResponse, error) {
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		resp, err := scanShipmentRow(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
