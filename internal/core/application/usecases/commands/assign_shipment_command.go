package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrAssignShipmentCommandIsNotConstructed = errors.New(
	"AssignShipmentCommand must be created via NewAssignShipmentCommand constructor",
)

// AssignShipmentCommand triggers the binding of a pending shipment to one
// route and one available carrier, moving it to in-transit. This command
// represents the dispatcher's decision: all three identifiers are chosen by
// the caller, typically from the pending-shipment list and the route/carrier
// catalogs.
//
// Example:
//
//	cmd, err := NewAssignShipmentCommand(shipmentID, routeID, carrierID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignShipmentCommandHandler(uowFactory, assignmentService)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // not found, conflict, or infrastructure failure
//	    return err
//	}
type AssignShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	routeID    kernel.UUID
	carrierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignShipmentCommand creates a command to assign a route and carrier
// to a shipment. All three identifiers must be valid UUIDs; whether they
// reference existing records is checked by the handler against the store.
func NewAssignShipmentCommand(shipmentID, routeID, carrierID kernel.UUID) (AssignShipmentCommand, error) {
	command := AssignShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setRouteID(routeID),
		command.setCarrierID(carrierID),
	); err != nil {
		return AssignShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignShipmentCommandIsNotConstructed if validation fails.
func (c AssignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to assign.
func (c AssignShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RouteID returns the identifier of the chosen route.
func (c AssignShipmentCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CarrierID returns the identifier of the chosen carrier.
func (c AssignShipmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *AssignShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AssignShipmentCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *AssignShipmentCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}
