package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

// Notes recorded in the status history at well-known transition points.
const (
	// NotesShipmentRegistered accompanies the entry written at shipment creation.
	NotesShipmentRegistered = "shipment registered"
	// NotesRouteAndCarrierAssigned accompanies the entry written on assignment.
	NotesRouteAndCarrierAssigned = "route and carrier assigned"
)

// ErrHistoryEntryIsNotConstructed is returned when using an improperly
// initialized HistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one record in a shipment's append-only audit trail.
// An entry is written when the shipment is registered and on every status
// transition afterwards. Entries are never mutated or deleted; other
// components only ever append and read.
type HistoryEntry struct {
	// id uniquely identifies the entry
	id kernel.UUID
	// shipmentID references the shipment the entry belongs to
	shipmentID kernel.UUID
	// status is the shipment status recorded at this point
	status Status
	// notes is a short human-readable description of the transition
	notes string
	// createdAt orders entries within a shipment's history
	createdAt time.Time
	// guard ensures the entry was created via NewHistoryEntry
	guard guard.ConstructorGuard
}

// NewHistoryEntry creates an audit record for a shipment status transition.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - shipmentID: The shipment this entry belongs to
//   - status: The status the shipment holds at this point
//   - notes: Short description of the transition (may be empty)
//   - now: The moment the transition happened
func NewHistoryEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	notes string,
	now time.Time,
) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		notes:     notes,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setShipmentID(shipmentID),
		entry.setStatus(status),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the HistoryEntry was properly constructed through NewHistoryEntry.
func (e *HistoryEntry) Validate() error {
	if e == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *HistoryEntry) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the identifier of the shipment this entry belongs to.
func (e *HistoryEntry) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Status returns the shipment status recorded by this entry.
func (e *HistoryEntry) Status() Status {
	return e.status
}

// Notes returns the description recorded with the transition.
func (e *HistoryEntry) Notes() string {
	return e.notes
}

// CreatedAt returns the moment the transition happened.
func (e *HistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *HistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *HistoryEntry) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
