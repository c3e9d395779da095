package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

const (
	// trackingNumberLength is the fixed length of a tracking number.
	trackingNumberLength = 10
	// trackingNumberAlphabet is the character set tracking numbers are drawn from.
	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not
// initialized through one of the constructor functions.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via GenerateTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is a value object representing the customer-facing reference
// of a shipment. It is a fixed-length string of uppercase letters and digits,
// generated once at shipment creation and immutable afterwards.
//
// Uniqueness is probabilistic: the 36^10 value space makes collisions rare
// enough that they are not checked against existing numbers.
//
// The zero value of TrackingNumber is invalid and must be constructed using
// GenerateTrackingNumber or TrackingNumberFromString.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber creates a new random tracking number.
// The random source is crypto/rand so numbers are not guessable in sequence.
func GenerateTrackingNumber() (TrackingNumber, error) {
	buf := make([]byte, trackingNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return TrackingNumber{}, fmt.Errorf("failed to generate tracking number: %w", err)
	}

	var sb strings.Builder
	sb.Grow(trackingNumberLength)
	for _, b := range buf {
		sb.WriteByte(trackingNumberAlphabet[int(b)%len(trackingNumberAlphabet)])
	}

	return TrackingNumber{value: sb.String()}, nil
}

// TrackingNumberFromString reconstructs a TrackingNumber from its string
// representation, typically when loading a shipment from persistence.
//
// Returns an error if the string is not exactly 10 uppercase alphanumeric
// characters.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if len(s) != trackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("length must be %d, got %d", trackingNumberLength, len(s)),
		)
	}

	for _, r := range s {
		if !strings.ContainsRune(trackingNumberAlphabet, r) {
			return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
				"trackingNumber",
				fmt.Errorf("%q is not an uppercase letter or digit", r),
			)
		}
	}

	return TrackingNumber{value: s}, nil
}

// String returns the tracking number as a plain string.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks if the TrackingNumber is properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
