package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserShipmentsQueryHandler retrieves one customer's shipments.
type GetUserShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserShipmentsQueryHandler creates a handler for per-customer
// shipment queries. Requires a GORM database connection for query execution.
func NewGetUserShipmentsQueryHandler(db *gorm.DB) GetUserShipmentsQueryHandler {
	return GetUserShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns the customer's shipments newest first;
// an unknown customer yields an empty slice, not an error.
func (h GetUserShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUserShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return collectShipmentRows(rows)
}
