// Package route contains the Route aggregate: a named path between two points
// with an estimated duration. Routes are immutable reference data after
// creation; many shipments may reference the same route without owning it.
package route

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for route operations.
var (
	// ErrNameIsRequired is returned when attempting to create a route without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStartPointIsRequired is returned when attempting to create a route without a start point.
	ErrStartPointIsRequired = errs.NewValueIsRequiredError("startPoint")
	// ErrEndPointIsRequired is returned when attempting to create a route without an end point.
	ErrEndPointIsRequired = errs.NewValueIsRequiredError("endPoint")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route represents a named delivery path between two points.
//
// Business rules:
//   - Name, start point, and end point must be non-empty
//   - Estimated duration must be positive (minutes)
//   - Start and end points equal to each other are permitted; circular
//     routes are legal
type Route struct {
	// id uniquely identifies the route
	id kernel.UUID
	// name is the human-readable name of the route
	name string
	// startPoint and endPoint name the route endpoints
	startPoint string
	endPoint   string
	// estimatedDuration is the expected travel time in minutes
	estimatedDuration int
	// guard ensures the route was properly constructed
	guard guard.ConstructorGuard
}

// NewRoute creates a new Route with the specified parameters.
// This is the only way to create a valid Route instance.
//
// Parameters:
//   - id: Unique identifier for the route
//   - name: Human-readable name (must be non-empty)
//   - startPoint, endPoint: Route endpoints (must be non-empty)
//   - estimatedDuration: Expected travel time in minutes (must be positive)
//
// Returns the created route, or a validation error aggregating every
// violated rule.
func NewRoute(id kernel.UUID, name, startPoint, endPoint string, estimatedDuration int) (*Route, error) {
	route := &Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setID(id),
		route.setName(name),
		route.setEndpoints(startPoint, endPoint),
		route.setEstimatedDuration(estimatedDuration),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// RestoreRoute reconstructs a Route aggregate from persistent storage.
// Identical to NewRoute in validation; exists so call sites distinguish
// rehydration from fresh registration.
func RestoreRoute(id kernel.UUID, name, startPoint, endPoint string, estimatedDuration int) (*Route, error) {
	return NewRoute(id, name, startPoint, endPoint, estimatedDuration)
}

// Validate checks if the Route was properly constructed using a constructor.
// The zero value of Route is invalid and will fail this validation.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares two routes for equality based on their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the route.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable name of the route.
func (r *Route) Name() string {
	return r.name
}

// StartPoint returns the name of the route's starting point.
func (r *Route) StartPoint() string {
	return r.startPoint
}

// EndPoint returns the name of the route's end point.
func (r *Route) EndPoint() string {
	return r.endPoint
}

// EstimatedDuration returns the expected travel time in minutes.
func (r *Route) EstimatedDuration() int {
	return r.estimatedDuration
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Route) setEndpoints(startPoint, endPoint string) error {
	if startPoint == "" {
		return ErrStartPointIsRequired
	}
	if endPoint == "" {
		return ErrEndPointIsRequired
	}
	r.startPoint = startPoint
	r.endPoint = endPoint
	return nil
}

func (r *Route) setEstimatedDuration(estimatedDuration int) error {
	if estimatedDuration <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDuration",
			fmt.Errorf("%d is not greater than 0", estimatedDuration),
		)
	}
	r.estimatedDuration = estimatedDuration
	return nil
}
