// Package guard ensures value objects and entities are only created through
// their designated constructor functions. It lets validation reject zero-value
// instances produced by direct struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was properly initialized through
// its constructor or created as a zero value. Embedding a ConstructorGuard in
// a domain object and calling Validate in the object's own Validate method
// makes zero-value instances fail validation.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function.
//
// Example usage:
//
//	type TrackingNumber struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingNumber(value string) (TrackingNumber, error) {
//	    if value == "" {
//	        return TrackingNumber{}, errors.New("value is required")
//	    }
//	    return TrackingNumber{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t TrackingNumber) Validate() error {
//	    return t.guard.Validate(ErrTrackingNumberNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain objects
// to ensure they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
