package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarrierCommand_ValidInput(t *testing.T) {
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, "Pacific Freight", "truck", 1200, true)
	require.NoError(t, err)
	assert.Equal(t, carrierID, cmd.CarrierID())
	assert.Equal(t, "Pacific Freight", cmd.Name())
	assert.Equal(t, "truck", cmd.VehicleType())
	assert.Equal(t, 1200, cmd.Capacity())
	assert.True(t, cmd.Available())
}

func TestNewCreateCarrierCommand_UnavailableCarrier(t *testing.T) {
	cmd, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "Night Cargo", "van", 400, false)
	require.NoError(t, err)
	assert.False(t, cmd.Available())
}

func TestNewCreateCarrierCommand_InvalidCarrierID(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.UUID{}, "Pacific Freight", "truck", 1200, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateCarrierCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "", "truck", 1200, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCarrierNameIsRequired)
}

func TestNewCreateCarrierCommand_EmptyVehicleType(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "Pacific Freight", "", 1200, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVehicleTypeIsRequired)
}

func TestNewCreateCarrierCommand_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -10} {
		_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "Pacific Freight", "truck", capacity, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewCreateCarrierCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "", "", 0, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCarrierNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrVehicleTypeIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCarrierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCarrierCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateCarrierCommandIsNotConstructed)
}
