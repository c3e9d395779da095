// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipments together
// with their owned package.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its package, status, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment and locks its row for the duration
	// of the surrounding transaction. The lock is acquired without waiting:
	// if another transaction already holds it, the call fails with a
	// conflict instead of blocking, so assignment attempts never stall on
	// each other.
	//
	// Must be called inside an active unit of work transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllPending retrieves all shipments still waiting for a route and
	// carrier, oldest first.
	GetAllPending(ctx context.Context) ([]*shipment.Shipment, error)
}
