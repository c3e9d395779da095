// Package historyrepo provides data transfer objects and mapping functions
// for the shipment status history. The table is append-only; rows are never
// updated or deleted.
package historyrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents the database structure for persisting history
// entries. Indexed by shipment so a shipment's trail reads in one scan.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Status     int
	Notes      string `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "shipment_history"
}

// fromDomain converts a history entry to its database representation.
func fromDomain(entry *shipment.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		ShipmentID: entry.ShipmentID().Bytes(),
		Status:     int(entry.Status()),
		Notes:      entry.Notes(),
		CreatedAt:  entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a history entry.
func toDomain(dto HistoryEntryDTO) (*shipment.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return shipment.NewHistoryEntry(id, shipmentID, shipment.Status(dto.Status), dto.Notes, dto.CreatedAt)
}
