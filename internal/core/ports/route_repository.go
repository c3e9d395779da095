package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// Routes are immutable reference data, so there is no update operation.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	// Routes are never mutated, so no locking variant exists.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
