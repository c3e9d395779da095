package queries

import (
	"context"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarrierResponse is the read model of one fleet member.
type CarrierResponse struct {
	ID          kernel.UUID
	Name        string
	VehicleType string
	Capacity    int
	Available   bool
}

// GetAllCarriersQueryHandler retrieves the carrier fleet.
type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCarriersQueryHandler creates a handler for fleet queries.
// Requires a GORM database connection for query execution.
func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle executes the query. Carriers are returned ordered by name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]CarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, vehicle_type, capacity, available
		FROM carriers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]CarrierResponse, 0)
	for rows.Next() {
		var resp CarrierResponse
		var id uuid.UUID

		err := rows.Scan(&id, &resp.Name, &resp.VehicleType, &resp.Capacity, &resp.Available)
		if err != nil {
			return nil, err
		}

		carrierID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = carrierID

		carriers = append(carriers, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
