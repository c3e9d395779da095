package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipment is the request body for registering a shipment.
type NewShipment struct {
	UserID             uuid.UUID  `json:"userId"`
	OriginAddress      string     `json:"originAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	Package            NewPackage `json:"package"`
}

// NewPackage describes the parcel of a new shipment.
type NewPackage struct {
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	ProductType string  `json:"productType"`
}

// AssignShipment is the request body for assigning a route and carrier.
type AssignShipment struct {
	RouteID   uuid.UUID `json:"routeId"`
	CarrierID uuid.UUID `json:"carrierId"`
}

// NewRoute is the request body for adding a route to the catalog.
type NewRoute struct {
	Name              string `json:"name"`
	StartPoint        string `json:"startPoint"`
	EndPoint          string `json:"endPoint"`
	EstimatedDuration int    `json:"estimatedDuration"`
}

// NewCarrier is the request body for adding a carrier to the fleet.
type NewCarrier struct {
	Name        string `json:"name"`
	VehicleType string `json:"vehicleType"`
	Capacity    int    `json:"capacity"`
	Available   *bool  `json:"available,omitempty"`
}

// Shipment is the response shape shared by every shipment listing.
type Shipment struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	TrackingNumber     string     `json:"trackingNumber"`
	Status             string     `json:"status"`
	OriginAddress      string     `json:"originAddress"`
	DestinationAddress string     `json:"destinationAddress"`
	Package            Package    `json:"package"`
	RouteID            *uuid.UUID `json:"routeId,omitempty"`
	CarrierID          *uuid.UUID `json:"carrierId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Package is the parcel section of a shipment response.
type Package struct {
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	ProductType string  `json:"productType"`
}

// ShipmentDetail extends Shipment with assignment details and the
// tracking history.
type ShipmentDetail struct {
	Shipment

	Route   *Route         `json:"route,omitempty"`
	Carrier *Carrier       `json:"carrier,omitempty"`
	History []HistoryEntry `json:"history"`
}

// HistoryEntry is one row of a shipment's tracking trail.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Route is the response shape of a route catalog entry.
type Route struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	StartPoint        string    `json:"startPoint"`
	EndPoint          string    `json:"endPoint"`
	EstimatedDuration int       `json:"estimatedDuration"`
}

// Carrier is the response shape of a fleet member.
type Carrier struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	VehicleType string    `json:"vehicleType"`
	Capacity    int       `json:"capacity"`
	Available   bool      `json:"available"`
}
