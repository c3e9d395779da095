package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// HistoryRepository defines the persistence contract for the shipment status
// audit trail. The trail is append-only: entries are never updated or
// deleted.
type HistoryRepository interface {
	// Append persists a new history entry.
	Append(ctx context.Context, entry *shipment.HistoryEntry) error

	// ListByShipment retrieves all history entries for a shipment, ordered
	// by creation time ascending.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.HistoryEntry, error)
}
