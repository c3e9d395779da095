// Package shipment contains the Shipment aggregate and its owned entities.
//
// The aggregate root is Shipment, which owns exactly one Package and moves
// through the Status state machine. HistoryEntry records form the shipment's
// append-only audit trail.
//
// The central invariant of the aggregate is assignment consistency: a
// shipment's route and carrier references are either both unset (Pending) or
// both set (InTransit and beyond). The Assign method is the only way to bind
// them, and it binds them together.
package shipment
