package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentHistoryQueryHandler retrieves the tracking trail of a shipment.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for shipment history
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the query. An unknown shipment is an error, not an empty
// trail, so callers can tell a missing shipment apart from a fresh one.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var count int64
	err := db.Raw(`
		SELECT COUNT(*)
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	return fetchHistory(db, query.ShipmentID())
}
