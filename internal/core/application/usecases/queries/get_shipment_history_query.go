package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves the tracking history of one shipment,
// oldest entry first.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's history.
// The shipment identifier must be a valid UUID.
func NewGetShipmentHistoryQuery(shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment whose history is requested.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
