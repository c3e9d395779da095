package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrGetPendingShipmentsQueryIsNotConstructed = errors.New(
	"GetPendingShipmentsQuery must be created via NewGetPendingShipmentsQuery constructor",
)

// GetPendingShipmentsQuery retrieves all shipments still waiting for a route
// and carrier, oldest first. This is the dispatcher's worklist.
//
// Example:
//
//	query := NewGetPendingShipmentsQuery()
//	handler := NewGetPendingShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending shipments: %w", err)
//	}
type GetPendingShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShipmentsQuery creates a query to retrieve pending shipments.
func NewGetPendingShipmentsQuery() GetPendingShipmentsQuery {
	return GetPendingShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsQueryIsNotConstructed)
}
