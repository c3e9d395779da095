package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment in the store regardless of
// owner or status. Intended for operator views.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}
