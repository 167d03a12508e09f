package vehicle_test

import (
	"testing"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		v, err := vehicle.NewVehicle(id, "AB-123-CD", 500, 900)

		require.NoError(t, err)
		assert.True(t, v.ID().IsEqual(id))
		assert.Equal(t, "AB-123-CD", v.Plate())
		assert.Equal(t, 500, v.MaxWeight())
		assert.Equal(t, 900, v.MaxVolume())
	})

	t.Run("empty plate", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "", 500, 900)

		require.ErrorIs(t, err, vehicle.ErrPlateIsRequired)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "AB-123-CD", 0, 900)
		require.ErrorIs(t, err, vehicle.ErrMaxWeightIsInvalid)

		_, err = vehicle.NewVehicle(kernel.NewUUID(), "AB-123-CD", 500, -1)
		require.ErrorIs(t, err, vehicle.ErrMaxVolumeIsInvalid)
	})
}

func TestVehicle_CanCarry(t *testing.T) {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "AB-123-CD", 500, 900)
	require.NoError(t, err)

	tests := []struct {
		name     string
		weight   int
		volume   int
		expected bool
	}{
		{"below both limits", 400, 800, true},
		{"exactly at both limits", 500, 900, true},
		{"weight over limit", 501, 800, false},
		{"volume over limit", 400, 901, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, v.CanCarry(test.weight, test.volume))
		})
	}
}

func TestVehicle_ZeroValueIsInvalid(t *testing.T) {
	var v vehicle.Vehicle

	require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}
