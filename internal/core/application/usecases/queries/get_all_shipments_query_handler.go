package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves every shipment for operator views.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for the all-shipments
// query. Requires a GORM database connection for query execution.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns all shipments newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + selectShipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}

	return collectShipmentRows(rows)
}
