package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment represents a customer order to move one package from an origin
// address to a destination address. It is the aggregate root that manages the
// shipment lifecycle from registration through route and carrier assignment.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier, owner, and tracking number
//   - Origin and destination addresses must be non-empty
//   - Owns exactly one Package, created alongside it
//   - Route and carrier are either both unassigned or both assigned, never
//     partially: status == Pending exactly when no route is bound
//   - Status transitions follow the rules in Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// userID references the owning customer
	userID kernel.UUID

	// pkg is the parcel owned by this shipment (1:1)
	pkg *Package

	// originAddress and destinationAddress are free-form postal addresses
	originAddress      string
	destinationAddress string

	// status is the current state in the shipment lifecycle
	status Status

	// trackingNumber is the customer-facing reference, immutable after creation
	trackingNumber kernel.TrackingNumber

	// routeID and carrierID are the assigned route and carrier (nil until assignment)
	routeID   *kernel.UUID
	carrierID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the shipment was created via a constructor
	guard guard.ConstructorGuard
}

// NewShipment creates a newly registered Shipment with validation. This is
// the only way to create a fresh shipment; the result is always in Pending
// status with no route or carrier bound.
//
// Parameters:
//   - id: Unique identifier for the shipment
//   - userID: Identifier of the owning customer
//   - pkg: The parcel to ship (must be a valid Package)
//   - originAddress: Pickup address (must be non-empty)
//   - destinationAddress: Delivery address (must be non-empty)
//   - trackingNumber: Generated tracking reference
//   - now: Creation timestamp, recorded as both createdAt and updatedAt
//
// Returns the created shipment, or a validation error aggregating every
// violated rule.
func NewShipment(
	id kernel.UUID,
	userID kernel.UUID,
	pkg *Package,
	originAddress string,
	destinationAddress string,
	trackingNumber kernel.TrackingNumber,
	now time.Time,
) (*Shipment, error) {
	shipment := &Shipment{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setUserID(userID),
		shipment.setPackage(pkg),
		shipment.setOriginAddress(originAddress),
		shipment.setDestinationAddress(destinationAddress),
		shipment.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// Unlike NewShipment, which always produces a Pending shipment, this
// constructor restores a shipment to its previously persisted state including
// status and any route/carrier assignment.
//
// Beyond the field validations of NewShipment, restoration enforces the
// assignment consistency invariant: routeID and carrierID must both be nil or
// both be set, and the combination must agree with the status.
func RestoreShipment(
	id kernel.UUID,
	userID kernel.UUID,
	pkg *Package,
	originAddress string,
	destinationAddress string,
	status Status,
	trackingNumber kernel.TrackingNumber,
	routeID *kernel.UUID,
	carrierID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	shipment := &Shipment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setUserID(userID),
		shipment.setPackage(pkg),
		shipment.setOriginAddress(originAddress),
		shipment.setDestinationAddress(destinationAddress),
		shipment.setTrackingNumber(trackingNumber),
		shipment.setStatusWithAssignment(status, routeID, carrierID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// UserID returns the identifier of the owning customer.
func (s *Shipment) UserID() kernel.UUID {
	return s.userID
}

// Package returns the parcel owned by this shipment.
func (s *Shipment) Package() *Package {
	return s.pkg
}

// OriginAddress returns the pickup address.
func (s *Shipment) OriginAddress() string {
	return s.originAddress
}

// DestinationAddress returns the delivery address.
func (s *Shipment) DestinationAddress() string {
	return s.destinationAddress
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// TrackingNumber returns the customer-facing tracking reference.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// Route returns the assigned route's ID, or nil if unassigned.
func (s *Shipment) Route() *kernel.UUID {
	return s.routeID
}

// Carrier returns the assigned carrier's ID, or nil if unassigned.
func (s *Shipment) Carrier() *kernel.UUID {
	return s.carrierID
}

// CreatedAt returns the registration timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ValidateAssign reports whether the shipment can currently be assigned,
// without performing the transition. Fails with a conflict when the shipment
// already left Pending.
func (s *Shipment) ValidateAssign() error {
	return s.status.ValidateAssign()
}

// Assign binds the shipment to a route and carrier and moves it to InTransit.
//
// Business rules enforced:
//   - Both identifiers must be valid
//   - The shipment must still be Pending; a second call fails with a
//     conflict rather than overwriting the first assignment
//
// The route and carrier are set together so the aggregate never observes a
// partial assignment. updatedAt is bumped to the supplied timestamp.
func (s *Shipment) Assign(routeID, carrierID kernel.UUID, now time.Time) error {
	if err := errors.Join(routeID.Validate(), carrierID.Validate()); err != nil {
		return err
	}

	newStatus, err := s.status.Assign()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.routeID = &routeID
	s.carrierID = &carrierID
	s.updatedAt = now
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Shipment) setPackage(pkg *Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	s.pkg = pkg
	return nil
}

func (s *Shipment) setOriginAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	s.originAddress = address
	return nil
}

func (s *Shipment) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	s.destinationAddress = address
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

// setStatusWithAssignment restores status together with the route/carrier
// pair, rejecting partial assignments and status/assignment mismatches.
func (s *Shipment) setStatusWithAssignment(status Status, routeID, carrierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if (routeID == nil) != (carrierID == nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignment",
			errors.New("routeId and carrierId must be assigned together"),
		)
	}

	assigned := routeID != nil
	if err := status.ValidateCanHaveAssignment(assigned); err != nil {
		return err
	}

	if assigned {
		if err := errors.Join(routeID.Validate(), carrierID.Validate()); err != nil {
			return err
		}
	}

	s.status = status
	s.routeID = routeID
	s.carrierID = carrierID
	return nil
}
