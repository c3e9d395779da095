package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when using an improperly initialized Package.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package describes the physical parcel carried by a shipment.
// It is an entity owned exclusively by one Shipment: created alongside it,
// never shared and never independently mutated afterwards.
//
// Invariants:
//   - Weight must be positive
//   - Every dimension (length, width, height) must be positive
//   - Product type must be non-empty
type Package struct {
	// id uniquely identifies the package
	id kernel.UUID
	// weight is the parcel weight in kilograms
	weight float64
	// length, width, height are the parcel dimensions in centimeters
	length float64
	width  float64
	height float64
	// productType is a free-form description of the contents
	productType string
	// guard ensures the package was created via NewPackage
	guard guard.ConstructorGuard
}

// NewPackage creates a new Package with validation. This is the only way to
// create a valid Package; all dimensional invariants are enforced here.
//
// Parameters:
//   - id: Unique identifier for the package (must be a valid UUID)
//   - weight: Parcel weight in kilograms (must be positive)
//   - length, width, height: Parcel dimensions in centimeters (each must be positive)
//   - productType: Description of the contents (must be non-empty)
//
// Returns the created package, or a validation error aggregating every
// violated rule.
func NewPackage(
	id kernel.UUID,
	weight, length, width, height float64,
	productType string,
) (*Package, error) {
	pkg := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setWeight(weight),
		pkg.setDimensions(length, width, height),
		pkg.setProductType(productType),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Validate ensures the Package instance was properly constructed through NewPackage.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Weight returns the parcel weight in kilograms.
func (p *Package) Weight() float64 {
	return p.weight
}

// Length returns the parcel length in centimeters.
func (p *Package) Length() float64 {
	return p.length
}

// Width returns the parcel width in centimeters.
func (p *Package) Width() float64 {
	return p.width
}

// Height returns the parcel height in centimeters.
func (p *Package) Height() float64 {
	return p.height
}

// ProductType returns the description of the parcel contents.
func (p *Package) ProductType() string {
	return p.productType
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", weight),
		)
	}
	p.weight = weight
	return nil
}

func (p *Package) setDimensions(length, width, height float64) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%vx%vx%v: every dimension must be greater than 0", length, width, height),
		)
	}
	p.length = length
	p.width = width
	p.height = height
	return nil
}

func (p *Package) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	p.productType = productType
	return nil
}
