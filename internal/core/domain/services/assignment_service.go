package services

import (
	"time"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
)

// AssignmentService is the domain service that executes the pending to
// in-transit transition: binding a shipment to exactly one route and one
// available carrier.
//
// Preconditions are evaluated before any aggregate is touched, in a fixed
// order so error messages stay maximally specific:
//  1. the shipment must still be pending
//  2. the carrier must be available
//
// Existence of the shipment, route, and carrier is the caller's concern; the
// command handler resolves identifiers through repositories and reports
// not-found before this service runs.
//
// On any precondition failure nothing is mutated, so a failed call leaves
// the aggregates exactly as loaded.
//
// Example usage:
//
//	svc := services.NewAssignmentService(false)
//	if err := svc.Assign(shp, rt, car, time.Now()); err != nil {
//	    // conflict: shipment not pending, or carrier unavailable
//	    return err
//	}
//	// shp is now InTransit with route and carrier bound
type AssignmentService struct {
	// exclusiveCarriers controls whether a successful assignment marks the
	// carrier busy. When false a carrier can serve any number of shipments
	// concurrently and availability is an operator-managed flag only.
	exclusiveCarriers bool
}

// NewAssignmentService creates an AssignmentService with the given carrier
// policy. exclusiveCarriers=true dedicates a carrier to one shipment at a
// time by flipping its availability on assignment; false leaves the flag
// untouched.
func NewAssignmentService(exclusiveCarriers bool) AssignmentService {
	return AssignmentService{exclusiveCarriers: exclusiveCarriers}
}

// Assign validates every precondition and, only if all pass, applies the
// transition: the shipment moves to InTransit with the route and carrier
// bound, and the carrier is marked busy when the exclusive policy is on.
//
// Returns a conflict error when the shipment is no longer pending or the
// carrier is unavailable, and a validation error when any aggregate was not
// properly constructed.
func (s AssignmentService) Assign(
	shp *shipment.Shipment,
	rt *route.Route,
	car *carrier.Carrier,
	now time.Time,
) error {
	if err := shp.Validate(); err != nil {
		return err
	}

	if err := shp.ValidateAssign(); err != nil {
		return err
	}

	if err := rt.Validate(); err != nil {
		return err
	}

	if err := car.Validate(); err != nil {
		return err
	}

	if err := car.ValidateAvailable(); err != nil {
		return err
	}

	if err := shp.Assign(rt.ID(), car.ID(), now); err != nil {
		return err
	}

	if s.exclusiveCarriers {
		car.MarkBusy()
	}

	return nil
}
