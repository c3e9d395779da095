package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetPendingShipmentsQueryHandler retrieves shipments awaiting assignment.
type GetPendingShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingShipmentsQueryHandler creates a handler for pending shipment
// queries. Requires a GORM database connection for query execution.
func NewGetPendingShipmentsQueryHandler(db *gorm.DB) GetPendingShipmentsQueryHandler {
	return GetPendingShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns pending shipments ordered oldest first,
// so the longest-waiting shipment tops the dispatcher's list.
func (h GetPendingShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE status = ?
		ORDER BY created_at
	`, int(shipment.Pending)).Rows()
	if err != nil {
		return nil, err
	}

	return collectShipmentRows(rows)
}
