package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrGetAllRoutesQueryIsNotConstructed = errors.New(
	"GetAllRoutesQuery must be created via NewGetAllRoutesQuery constructor",
)

// GetAllRoutesQuery retrieves every route in the catalog.
type GetAllRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRoutesQuery creates a query to retrieve all routes.
func NewGetAllRoutesQuery() GetAllRoutesQuery {
	return GetAllRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRoutesQueryIsNotConstructed)
}
