package historyrepo

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormHistoryRepository {
	return &GormHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append writes a new history entry.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *shipment.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// ListByShipment retrieves all history entries for a shipment in
// chronological order.
func (r *GormHistoryRepository) ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.HistoryEntry, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*shipment.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
