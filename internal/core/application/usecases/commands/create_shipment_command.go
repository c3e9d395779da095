package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginAddressIsRequired      = errs.NewValueIsRequiredError("originAddress")
	ErrDestinationAddressIsRequired = errs.NewValueIsRequiredError("destinationAddress")
	ErrProductTypeIsRequired        = errs.NewValueIsRequiredError("productType")
)

// CreateShipmentCommand represents a request to register a new shipment for a
// customer. It carries the addresses and the physical description of the
// parcel; identifiers and the tracking number are generated by the handler.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(
//	    shipmentID, userID,
//	    "12 Warehouse Rd", "401 Elm St",
//	    2.5, 30, 20, 15, "electronics",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID         kernel.UUID
	userID             kernel.UUID
	originAddress      string
	destinationAddress string
	weight             float64
	length             float64
	width              float64
	height             float64
	productType        string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that both identifiers are valid, both addresses are non-empty,
// the weight and every dimension are positive, and a product type is given.
// Returns an error aggregating every failed validation.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	userID kernel.UUID,
	originAddress string,
	destinationAddress string,
	weight, length, width, height float64,
	productType string,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setUserID(userID),
		command.setOriginAddress(originAddress),
		command.setDestinationAddress(destinationAddress),
		command.setWeight(weight),
		command.setDimensions(length, width, height),
		command.setProductType(productType),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will be created under.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// UserID returns the identifier of the owning customer.
func (c CreateShipmentCommand) UserID() kernel.UUID {
	return c.userID
}

// OriginAddress returns the pickup address.
func (c CreateShipmentCommand) OriginAddress() string {
	return c.originAddress
}

// DestinationAddress returns the delivery address.
func (c CreateShipmentCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Weight returns the parcel weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Length returns the parcel length in centimeters.
func (c CreateShipmentCommand) Length() float64 {
	return c.length
}

// Width returns the parcel width in centimeters.
func (c CreateShipmentCommand) Width() float64 {
	return c.width
}

// Height returns the parcel height in centimeters.
func (c CreateShipmentCommand) Height() float64 {
	return c.height
}

// ProductType returns the description of the parcel contents.
func (c CreateShipmentCommand) ProductType() string {
	return c.productType
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateShipmentCommand) setOriginAddress(address string) error {
	if address == "" {
		return ErrOriginAddressIsRequired
	}
	c.originAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDestinationAddress(address string) error {
	if address == "" {
		return ErrDestinationAddressIsRequired
	}
	c.destinationAddress = address
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", weight),
		)
	}
	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDimensions(length, width, height float64) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%vx%vx%v: every dimension must be greater than 0", length, width, height),
		)
	}
	c.length = length
	c.width = width
	c.height = height
	return nil
}

func (c *CreateShipmentCommand) setProductType(productType string) error {
	if productType == "" {
		return ErrProductTypeIsRequired
	}
	c.productType = productType
	return nil
}
