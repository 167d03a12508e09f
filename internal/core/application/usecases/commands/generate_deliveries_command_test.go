package commands_test

import (
	"testing"

	"couriermanagement/internal/core/application/usecases/commands"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func validDays(t *testing.T) []commands.DayPlanRequest {
	t.Helper()
	return []commands.DayPlanRequest{
		{
			Date: fixtureDate(t, 3),
			Routes: []commands.RoutePlanRequest{
				{
					RouteID: kernel.NewUUID(),
					Items: []commands.ManifestItemRequest{
						{ProductID: kernel.NewUUID(), Quantity: 2},
					},
				},
			},
		},
	}
}

func TestNewGenerateDeliveriesCommand_Valid(t *testing.T) {
	cmd, err := commands.NewGenerateDeliveriesCommand(validDays(t))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Len(t, cmd.Days(), 1)
}

func TestNewGenerateDeliveriesCommand_Invalid(t *testing.T) {
	t.Run("empty plan", func(t *testing.T) {
		_, err := commands.NewGenerateDeliveriesCommand(nil)
		require.ErrorIs(t, err, commands.ErrPlanDaysAreRequired)
	})

	t.Run("day without routes", func(t *testing.T) {
		days := validDays(t)
		days[0].Routes = nil

		_, err := commands.NewGenerateDeliveriesCommand(days)
		require.ErrorIs(t, err, commands.ErrDayRoutesAreRequired)
	})

	t.Run("route without items", func(t *testing.T) {
		days := validDays(t)
		days[0].Routes[0].Items = nil

		_, err := commands.NewGenerateDeliveriesCommand(days)
		require.ErrorIs(t, err, commands.ErrRouteItemsAreRequired)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		days := validDays(t)
		days[0].Routes[0].Items[0].Quantity = 0

		_, err := commands.NewGenerateDeliveriesCommand(days)
		require.ErrorIs(t, err, commands.ErrItemQuantityIsInvalid)
	})

	t.Run("unconstructed date", func(t *testing.T) {
		days := validDays(t)
		days[0].Date = kernel.Date{}

		_, err := commands.NewGenerateDeliveriesCommand(days)
		require.Error(t, err)
	})
}

func TestGenerateDeliveriesCommand_ZeroValueIsInvalid(t *testing.T) {
	var cmd commands.GenerateDeliveriesCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrGenerateDeliveriesCommandIsNotConstructed)
}
