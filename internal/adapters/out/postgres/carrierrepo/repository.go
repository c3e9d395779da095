package carrierrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgLockNotAvailable = "55P03"

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier to the database.
func (r *GormCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing carrier to the database.
// Select("*") forces zero values through; available=false must persist.
func (r *GormCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CarrierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier by ID.
func (r *GormCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a carrier by ID holding a row lock for the rest of
// the transaction. The NOWAIT request fails immediately with a conflict when
// another assignment already locked the same carrier.
func (r *GormCarrierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier", id.String())
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return nil, errs.NewConflictErrorWithCause("carrier is locked by another assignment", err)
		}
		return nil, err
	}

	return toDomain(dto)
}
