package ports

import (
	"context"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetForUpdate retrieves a carrier and locks its row for the duration of
	// the surrounding transaction, without waiting on a held lock. Two
	// concurrent assignments referencing the same carrier serialize here:
	// the loser fails with a conflict and may retry.
	//
	// Must be called inside an active unit of work transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
}
