package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrRouteNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrStartPointIsRequired = errs.NewValueIsRequiredError("startPoint")
	ErrEndPointIsRequired   = errs.NewValueIsRequiredError("endPoint")
)

// CreateRouteCommand represents a request to add a route to the catalog.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID           kernel.UUID
	name              string
	startPoint        string
	endPoint          string
	estimatedDuration int

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new route.
// Validates the identifier, requires a name and both endpoints, and requires
// a positive estimated duration. Start and end points may coincide, loop
// routes are legitimate.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	name string,
	startPoint string,
	endPoint string,
	estimatedDuration int,
) (CreateRouteCommand, error) {
	command := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRouteID(routeID),
		command.setName(name),
		command.setStartPoint(startPoint),
		command.setEndPoint(endPoint),
		command.setEstimatedDuration(estimatedDuration),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier the new route will be created under.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the route's display name.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// StartPoint returns the route's origin location.
func (c CreateRouteCommand) StartPoint() string {
	return c.startPoint
}

// EndPoint returns the route's destination location.
func (c CreateRouteCommand) EndPoint() string {
	return c.endPoint
}

// EstimatedDuration returns the expected travel time in minutes.
func (c CreateRouteCommand) EstimatedDuration() int {
	return c.estimatedDuration
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return ErrRouteNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateRouteCommand) setStartPoint(startPoint string) error {
	if startPoint == "" {
		return ErrStartPointIsRequired
	}
	c.startPoint = startPoint
	return nil
}

func (c *CreateRouteCommand) setEndPoint(endPoint string) error {
	if endPoint == "" {
		return ErrEndPointIsRequired
	}
	c.endPoint = endPoint
	return nil
}

func (c *CreateRouteCommand) setEstimatedDuration(estimatedDuration int) error {
	if estimatedDuration <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDuration",
			fmt.Errorf("%d is not greater than 0", estimatedDuration),
		)
	}
	c.estimatedDuration = estimatedDuration
	return nil
}
