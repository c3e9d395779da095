package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackage(t *testing.T) *shipment.Package {
	t.Helper()
	pkg, err := shipment.NewPackage(kernel.NewUUID(), 2.5, 30, 20, 15, "electronics")
	require.NoError(t, err)
	return pkg
}

func validTrackingNumber(t *testing.T) kernel.TrackingNumber {
	t.Helper()
	tn, err := kernel.GenerateTrackingNumber()
	require.NoError(t, err)
	return tn
}

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should create valid shipment with all valid parameters", func(t *testing.T) {
		tn := validTrackingNumber(t)
		s, err := shipment.NewShipment(
			validID, validUserID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St", tn, now,
		)

		require.NoError(t, err)
		require.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.UserID().IsEqual(validUserID))
		assert.Equal(t, "12 Warehouse Rd", s.OriginAddress())
		assert.Equal(t, "401 Elm St", s.DestinationAddress())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, tn, s.TrackingNumber())
		assert.Nil(t, s.Route())
		assert.Nil(t, s.Carrier())
		assert.Equal(t, now, s.CreatedAt())
		assert.Equal(t, now, s.UpdatedAt())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		s, err := shipment.NewShipment(
			kernel.UUID{}, validUserID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St", validTrackingNumber(t), now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with nil package", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, validUserID, nil,
			"12 Warehouse Rd", "401 Elm St", validTrackingNumber(t), now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, shipment.ErrPackageIsNotConstructed)
	})

	t.Run("should fail with empty addresses", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, validUserID, validPackage(t),
			"", "", validTrackingNumber(t), now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "originAddress")
		assert.Contains(t, err.Error(), "destinationAddress")
	})

	t.Run("should fail with zero tracking number", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, validUserID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St", kernel.TrackingNumber{}, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShipment_Assign(t *testing.T) {
	now := time.Now().UTC()

	newPendingShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), validPackage(t),
			"12 Warehouse Rd", "401 Elm St", validTrackingNumber(t), now,
		)
		require.NoError(t, err)
		return s
	}

	t.Run("should bind route and carrier and move to in transit", func(t *testing.T) {
		s := newPendingShipment(t)
		routeID := kernel.NewUUID()
		carrierID := kernel.NewUUID()
		later := now.Add(time.Minute)

		require.NoError(t, s.Assign(routeID, carrierID, later))

		assert.Equal(t, shipment.InTransit, s.Status())
		require.NotNil(t, s.Route())
		assert.True(t, s.Route().IsEqual(routeID))
		require.NotNil(t, s.Carrier())
		assert.True(t, s.Carrier().IsEqual(carrierID))
		assert.Equal(t, later, s.UpdatedAt())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("should fail on second assignment", func(t *testing.T) {
		s := newPendingShipment(t)
		firstRoute := kernel.NewUUID()
		firstCarrier := kernel.NewUUID()
		require.NoError(t, s.Assign(firstRoute, firstCarrier, now))

		err := s.Assign(kernel.NewUUID(), kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		// the first assignment is preserved
		assert.True(t, s.Route().IsEqual(firstRoute))
		assert.True(t, s.Carrier().IsEqual(firstCarrier))
	})

	t.Run("should fail with invalid identifiers and stay pending", func(t *testing.T) {
		s := newPendingShipment(t)

		err := s.Assign(kernel.UUID{}, kernel.NewUUID(), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Route())
		assert.Nil(t, s.Carrier())
	})

	t.Run("ValidateAssign should mirror the transition rules", func(t *testing.T) {
		s := newPendingShipment(t)
		require.NoError(t, s.ValidateAssign())

		require.NoError(t, s.Assign(kernel.NewUUID(), kernel.NewUUID(), now))
		err := s.ValidateAssign()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRestoreShipment(t *testing.T) {
	now := time.Now().UTC()
	id := kernel.NewUUID()
	userID := kernel.NewUUID()

	t.Run("should restore pending shipment without assignment", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.Pending, validTrackingNumber(t),
			nil, nil, now, now,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Nil(t, s.Route())
		assert.Nil(t, s.Carrier())
	})

	t.Run("should restore in transit shipment with assignment", func(t *testing.T) {
		routeID := kernel.NewUUID()
		carrierID := kernel.NewUUID()

		s, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.InTransit, validTrackingNumber(t),
			&routeID, &carrierID, now, now.Add(time.Hour),
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.True(t, s.Route().IsEqual(routeID))
		assert.True(t, s.Carrier().IsEqual(carrierID))
		assert.Equal(t, now.Add(time.Hour), s.UpdatedAt())
	})

	t.Run("should reject partial assignment", func(t *testing.T) {
		routeID := kernel.NewUUID()

		_, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.InTransit, validTrackingNumber(t),
			&routeID, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "assigned together")
	})

	t.Run("should reject pending shipment with assignment", func(t *testing.T) {
		routeID := kernel.NewUUID()
		carrierID := kernel.NewUUID()

		_, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.Pending, validTrackingNumber(t),
			&routeID, &carrierID, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject in transit shipment without assignment", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.InTransit, validTrackingNumber(t),
			nil, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should restore canceled shipment with or without assignment", func(t *testing.T) {
		routeID := kernel.NewUUID()
		carrierID := kernel.NewUUID()

		_, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.Canceled, validTrackingNumber(t),
			nil, nil, now, now,
		)
		require.NoError(t, err)

		_, err = shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.Canceled, validTrackingNumber(t),
			&routeID, &carrierID, now, now,
		)
		require.NoError(t, err)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			id, userID, validPackage(t),
			"12 Warehouse Rd", "401 Elm St",
			shipment.Unknown, validTrackingNumber(t),
			nil, nil, now, now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should reject nil shipment", func(t *testing.T) {
		var s *shipment.Shipment
		assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("should reject zero value shipment", func(t *testing.T) {
		s := &shipment.Shipment{}
		assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_IsEqual(t *testing.T) {
	now := time.Now().UTC()
	id := kernel.NewUUID()

	makeShipment := func(t *testing.T, id kernel.UUID) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(
			id, kernel.NewUUID(), validPackage(t),
			"12 Warehouse Rd", "401 Elm St", validTrackingNumber(t), now,
		)
		require.NoError(t, err)
		return s
	}

	a := makeShipment(t, id)
	b := makeShipment(t, id)
	c := makeShipment(t, kernel.NewUUID())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
