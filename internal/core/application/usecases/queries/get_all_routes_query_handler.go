package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteResponse is the read model of one route catalog entry.
// EstimatedDuration is in minutes.
type RouteResponse struct {
	ID                kernel.UUID
	Name              string
	StartPoint        string
	EndPoint          string
	EstimatedDuration int
}

// GetAllRoutesQueryHandler retrieves the route catalog.
type GetAllRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRoutesQueryHandler creates a handler for route catalog queries.
// Requires a GORM database connection for query execution.
func NewGetAllRoutesQueryHandler(db *gorm.DB) GetAllRoutesQueryHandler {
	return GetAllRoutesQueryHandler{db: db}
}

// Handle executes the query. Routes are returned ordered by name.
func (h GetAllRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetAllRoutesQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, start_point, end_point, estimated_duration
		FROM routes
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteResponse, 0)
	for rows.Next() {
		var resp RouteResponse
		var id uuid.UUID

		err := rows.Scan(&id, &resp.Name, &resp.StartPoint, &resp.EndPoint, &resp.EstimatedDuration)
		if err != nil {
			return nil, err
		}

		routeID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = routeID

		routes = append(routes, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
