package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipmentDetailResponse is the read model of a single shipment, enriched
// with route and carrier details when assigned and the tracking history.
type ShipmentDetailResponse struct {
	ShipmentResponse

	Route   *RouteResponse
	Carrier *CarrierResponse
	History []HistoryEntryResponse
}

// HistoryEntryResponse is one row of a shipment's tracking trail.
type HistoryEntryResponse struct {
	ID        kernel.UUID
	Status    string
	Notes     string
	CreatedAt time.Time
}

// GetShipmentQueryHandler retrieves a single shipment with its assignment
// details and history.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// shipment exists with the requested identifier.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)

	shp, err := h.fetchShipment(db, query.ShipmentID())
	if err != nil {
		return ShipmentDetailResponse{}, err
	}

	detail := ShipmentDetailResponse{ShipmentResponse: shp}

	if shp.RouteID != nil {
		rt, rErr := fetchRoute(db, *shp.RouteID)
		if rErr != nil {
			return ShipmentDetailResponse{}, rErr
		}
		detail.Route = rt
	}

	if shp.CarrierID != nil {
		car, cErr := fetchCarrier(db, *shp.CarrierID)
		if cErr != nil {
			return ShipmentDetailResponse{}, cErr
		}
		detail.Carrier = car
	}

	history, err := fetchHistory(db, shp.ID)
	if err != nil {
		return ShipmentDetailResponse{}, err
	}
	detail.History = history

	return detail, nil
}

func (h GetShipmentQueryHandler) fetchShipment(
	db *gorm.DB,
	shipmentID kernel.UUID,
) (ShipmentResponse, error) {
	rows, err := db.Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", shipmentID.String())
	}

	return scanShipmentRow(rows)
}

// fetchRoute reads one route row. The route is referenced by a foreign key,
// so a miss here means the store is inconsistent, not that the caller asked
// for something unknown.
func fetchRoute(db *gorm.DB, routeID kernel.UUID) (*RouteResponse, error) {
	row := db.Raw(`
		SELECT id, name, start_point, end_point, estimated_duration
		FROM routes
		WHERE id = ?
	`, routeID.Bytes()).Row()

	var resp RouteResponse
	var id uuid.UUID
	err := row.Scan(&id, &resp.Name, &resp.StartPoint, &resp.EndPoint, &resp.EstimatedDuration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("route", routeID.String())
	}
	if err != nil {
		return nil, err
	}

	rID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = rID

	return &resp, nil
}

func fetchCarrier(db *gorm.DB, carrierID kernel.UUID) (*CarrierResponse, error) {
	row := db.Raw(`
		SELECT id, name, vehicle_type, capacity, available
		FROM carriers
		WHERE id = ?
	`, carrierID.Bytes()).Row()

	var resp CarrierResponse
	var id uuid.UUID
	err := row.Scan(&id, &resp.Name, &resp.VehicleType, &resp.Capacity, &resp.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("carrier", carrierID.String())
	}
	if err != nil {
		return nil, err
	}

	cID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.ID = cID

	return &resp, nil
}

// fetchHistory reads a shipment's trail oldest first.
func fetchHistory(db *gorm.DB, shipmentID kernel.UUID) ([]HistoryEntryResponse, error) {
	rows, err := db.Raw(`
		SELECT id, status, notes, created_at
		FROM shipment_history
		WHERE shipment_id = ?
		ORDER BY created_at
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var resp HistoryEntryResponse
		var id uuid.UUID
		var status int

		if err := rows.Scan(&id, &status, &resp.Notes, &resp.CreatedAt); err != nil {
			return nil, err
		}

		entryID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = entryID
		resp.Status = shipment.Status(status).String()

		entries = append(entries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
