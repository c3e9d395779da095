package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRouteCommand_ValidInput(t *testing.T) {
	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, "North Corridor", "Seattle", "Portland", 4)
	require.NoError(t, err)
	assert.Equal(t, routeID, cmd.RouteID())
	assert.Equal(t, "North Corridor", cmd.Name())
	assert.Equal(t, "Seattle", cmd.StartPoint())
	assert.Equal(t, "Portland", cmd.EndPoint())
	assert.Equal(t, 4, cmd.EstimatedDuration())
}

func TestNewCreateRouteCommand_LoopRoute(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), "City Loop", "Denver", "Denver", 2)
	require.NoError(t, err)
}

func TestNewCreateRouteCommand_InvalidRouteID(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.UUID{}, "North Corridor", "Seattle", "Portland", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateRouteCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), "", "Seattle", "Portland", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRouteNameIsRequired)
}

func TestNewCreateRouteCommand_EmptyEndpoints(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), "North Corridor", "", "Portland", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartPointIsRequired)

	_, err = commands.NewCreateRouteCommand(kernel.NewUUID(), "North Corridor", "Seattle", "", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEndPointIsRequired)
}

func TestNewCreateRouteCommand_InvalidEstimatedDuration(t *testing.T) {
	for _, duration := range []int{0, -3} {
		_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), "North Corridor", "Seattle", "Portland", duration)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestCreateRouteCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateRouteCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateRouteCommandIsNotConstructed)
}
