package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetUserShipmentsQueryIsNotConstructed = errors.New(
	"GetUserShipmentsQuery must be created via NewGetUserShipmentsQuery constructor",
)

// GetUserShipmentsQuery retrieves every shipment owned by one customer,
// newest first.
type GetUserShipmentsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserShipmentsQuery creates a query for one customer's shipments.
// The user identifier must be a valid UUID.
func NewGetUserShipmentsQuery(userID kernel.UUID) (GetUserShipmentsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserShipmentsQuery{}, err
	}

	return GetUserShipmentsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserShipmentsQueryIsNotConstructed)
}

// UserID returns the identifier of the customer whose shipments are requested.
func (q GetUserShipmentsQuery) UserID() kernel.UUID {
	return q.userID
}
