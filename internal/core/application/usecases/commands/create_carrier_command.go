package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
)

// CreateCarrierCommand represents a request to register a new carrier in the
// fleet. New carriers start out available unless stated otherwise.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID   kernel.UUID
	name        string
	vehicleType string
	capacity    int
	available   bool

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Validates the identifier, requires a name and vehicle type, and requires
// a positive capacity.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	vehicleType string,
	capacity int,
	available bool,
) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setName(name),
		command.setVehicleType(vehicleType),
		command.setCapacity(capacity),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier the new carrier will be created under.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier's display name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// VehicleType returns the kind of vehicle the carrier operates.
func (c CreateCarrierCommand) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the carrier's load capacity in kilograms.
func (c CreateCarrierCommand) Capacity() int {
	return c.capacity
}

// Available reports whether the carrier can take assignments right away.
func (c CreateCarrierCommand) Available() bool {
	return c.available
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *CreateCarrierCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	c.capacity = capacity
	return nil
}
