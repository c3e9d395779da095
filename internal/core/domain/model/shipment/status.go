package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions handled by this subsystem:
//
//	Pending ──assign──> InTransit
//
// Delivered and Canceled exist as values so persisted shipments in those
// states rehydrate correctly, but no operation here produces them; delivery
// and cancellation flows live outside the assignment subsystem.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipment is first registered.
	// Shipments in this status are waiting for a route and carrier.
	Pending

	// InTransit indicates the shipment has been bound to a route and carrier.
	// Terminal for this subsystem.
	InTransit

	// Delivered indicates the shipment reached its destination.
	Delivered

	// Canceled indicates the shipment was canceled.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		InTransit: "in_transit",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// StatusFromString converts a wire representation back to a Status.
// Returns an error for unrecognized values, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InTransit, Delivered, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns "pending", "in_transit", "delivered", or "canceled" for valid
// statuses and "unknown" for anything else. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAssign checks if the status allows assignment without performing
// the transition.
//
// Only Pending shipments can be assigned. Calling assign on a shipment that
// already left Pending fails with a conflict rather than silently
// overwriting the first assignment.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewConflictError("shipment not pending")
	}
	return nil
}

// ValidateCanHaveAssignment validates the consistency between shipment status
// and route/carrier assignment.
//
// Business rules:
//   - Pending shipments must not have a route or carrier assigned
//   - InTransit and Delivered shipments must have both assigned
//   - Canceled shipments may or may not carry an assignment, depending on
//     when the cancellation happened
//
// Parameters:
//   - assigned: whether the shipment has a route and carrier bound
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a route and carrier", s.String()),
		)
	}

	if !assigned && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no route and carrier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit
//
// Any other starting status fails with a conflict. This method is used by
// Shipment.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return InTransit, nil
}
