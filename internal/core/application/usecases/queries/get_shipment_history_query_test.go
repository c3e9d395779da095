package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentHistoryQuery_Valid(t *testing.T) {
	shipmentID := kernel.NewUUID()

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ShipmentID().IsEqual(shipmentID))
}

func TestNewGetShipmentHistoryQuery_InvalidShipmentID(t *testing.T) {
	_, err := queries.NewGetShipmentHistoryQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetShipmentHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentHistoryQueryIsNotConstructed)
}
