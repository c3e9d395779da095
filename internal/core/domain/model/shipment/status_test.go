package shipment_test

import (
	"fmt"
	"testing"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.Unknown))
		assert.Equal(t, 1, int(shipment.Pending))
		assert.Equal(t, 2, int(shipment.InTransit))
		assert.Equal(t, 3, int(shipment.Delivered))
		assert.Equal(t, 4, int(shipment.Canceled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Pending,
			shipment.InTransit,
			shipment.Delivered,
			shipment.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := shipment.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Status(-1), shipment.Status(5), shipment.Status(100)} {
			err := status.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[shipment.Status]string{
		shipment.Unknown:    "unknown",
		shipment.Pending:    "pending",
		shipment.InTransit:  "in_transit",
		shipment.Delivered:  "delivered",
		shipment.Canceled:   "canceled",
		shipment.Status(42): "unknown",
		shipment.Status(-1): "unknown",
	}
	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire values", func(t *testing.T) {
		cases := map[string]shipment.Status{
			"pending":    shipment.Pending,
			"in_transit": shipment.InTransit,
			"delivered":  shipment.Delivered,
			"canceled":   shipment.Canceled,
		}
		for wire, expected := range cases {
			status, err := shipment.StatusFromString(wire)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, wire := range []string{"", "unknown", "PENDING", "in-transit", "shipped"} {
			_, err := shipment.StatusFromString(wire)
			require.Error(t, err, "value %q", wire)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_ValidateAssign(t *testing.T) {
	t.Run("should allow assignment from Pending", func(t *testing.T) {
		require.NoError(t, shipment.Pending.ValidateAssign())
	})

	t.Run("should reject assignment from any other status", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.Unknown,
			shipment.InTransit,
			shipment.Delivered,
			shipment.Canceled,
		} {
			err := status.ValidateAssign()
			require.Error(t, err, "status %s", status.String())
			assert.ErrorIs(t, err, errs.ErrConflict)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should transition Pending to InTransit", func(t *testing.T) {
		next, err := shipment.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, next)
	})

	t.Run("should not transition twice", func(t *testing.T) {
		next, err := shipment.Pending.Assign()
		require.NoError(t, err)

		_, err = next.Assign()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestStatus_ValidateCanHaveAssignment(t *testing.T) {
	t.Run("pending must be unassigned", func(t *testing.T) {
		require.NoError(t, shipment.Pending.ValidateCanHaveAssignment(false))
		require.Error(t, shipment.Pending.ValidateCanHaveAssignment(true))
	})

	t.Run("in transit and delivered must be assigned", func(t *testing.T) {
		require.NoError(t, shipment.InTransit.ValidateCanHaveAssignment(true))
		require.Error(t, shipment.InTransit.ValidateCanHaveAssignment(false))
		require.NoError(t, shipment.Delivered.ValidateCanHaveAssignment(true))
		require.Error(t, shipment.Delivered.ValidateCanHaveAssignment(false))
	})

	t.Run("canceled may or may not be assigned", func(t *testing.T) {
		require.NoError(t, shipment.Canceled.ValidateCanHaveAssignment(true))
		require.NoError(t, shipment.Canceled.ValidateCanHaveAssignment(false))
	})
}
