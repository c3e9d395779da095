// Package carrier contains the Carrier aggregate: a delivery agent or vehicle
// resource with a capacity and an availability flag. Carriers are shared by
// reference; shipments point at them but never own them.
package carrier

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleTypeIsRequired is returned when attempting to create a carrier without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier represents a delivery agent or vehicle in the fleet.
// It is an aggregate root that manages carrier identity and availability.
//
// Business rules:
//   - Carrier must have a valid UUID, non-empty name and vehicle type, and
//     positive capacity
//   - Availability is a binary flag; an unavailable carrier cannot be bound
//     to new shipments
//   - Whether a successful assignment flips the flag is an application
//     policy, not an aggregate rule: the aggregate only exposes MarkBusy and
//     MarkAvailable
type Carrier struct {
	// id uniquely identifies the carrier
	id kernel.UUID
	// name is the human-readable name of the carrier
	name string
	// vehicleType describes the vehicle, e.g. "van" or "truck"
	vehicleType string
	// capacity is the maximum load in kilograms
	capacity int
	// available reports whether the carrier can take new shipments
	available bool
	// guard ensures the carrier was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrier creates a new Carrier with the specified parameters.
// This is the only way to create a valid Carrier instance.
//
// Parameters:
//   - id: Unique identifier for the carrier
//   - name: Human-readable name (must be non-empty)
//   - vehicleType: Vehicle description (must be non-empty)
//   - capacity: Maximum load in kilograms (must be positive)
//   - available: Initial availability
//
// Returns the created carrier, or a validation error aggregating every
// violated rule.
func NewCarrier(id kernel.UUID, name, vehicleType string, capacity int, available bool) (*Carrier, error) {
	carrier := &Carrier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
		carrier.setVehicleType(vehicleType),
		carrier.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistent storage.
// Identical to NewCarrier in validation; exists so call sites distinguish
// rehydration from fresh registration.
func RestoreCarrier(id kernel.UUID, name, vehicleType string, capacity int, available bool) (*Carrier, error) {
	return NewCarrier(id, name, vehicleType, capacity, available)
}

// Validate checks if the Carrier was properly constructed using a constructor.
// The zero value of Carrier is invalid and will fail this validation.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers for equality based on their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the carrier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the carrier.
func (c *Carrier) Name() string {
	return c.name
}

// VehicleType returns the vehicle description.
func (c *Carrier) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the maximum load in kilograms.
func (c *Carrier) Capacity() int {
	return c.capacity
}

// Available reports whether the carrier can take new shipments.
func (c *Carrier) Available() bool {
	return c.available
}

// ValidateAvailable checks that the carrier is currently available.
// Fails with a conflict when it is not, so callers can surface the specific
// reason instead of a generic failure.
func (c *Carrier) ValidateAvailable() error {
	if !c.available {
		return errs.NewConflictError("carrier unavailable")
	}
	return nil
}

// MarkBusy flags the carrier as unavailable for new shipments.
func (c *Carrier) MarkBusy() {
	c.available = false
}

// MarkAvailable flags the carrier as available for new shipments.
func (c *Carrier) MarkAvailable() {
	c.available = true
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *Carrier) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	c.capacity = capacity
	return nil
}
