package courier_test

import (
	"testing"

	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, startHour, endHour int) kernel.TimeWindow {
	t.Helper()
	start, err := kernel.NewTimeOfDay(startHour, 0)
	require.NoError(t, err)
	end, err := kernel.NewTimeOfDay(endHour, 0)
	require.NoError(t, err)
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewCourier(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()
		shift := window(t, 8, 18)

		c, err := courier.NewCourier(id, "Hanna", shift)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Hanna", c.Name())
		assert.True(t, c.Shift().IsEqual(shift))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", window(t, 8, 18))

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("invalid shift", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "Hanna", kernel.TimeWindow{})

		require.Error(t, err)
	})
}

func TestCourier_CanWork(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Hanna", window(t, 8, 18))
	require.NoError(t, err)

	t.Run("window inside shift", func(t *testing.T) {
		assert.True(t, c.CanWork(window(t, 9, 12)))
	})

	t.Run("window equal to shift", func(t *testing.T) {
		assert.True(t, c.CanWork(window(t, 8, 18)))
	})

	t.Run("window starts before shift", func(t *testing.T) {
		assert.False(t, c.CanWork(window(t, 7, 12)))
	})

	t.Run("window ends after shift", func(t *testing.T) {
		assert.False(t, c.CanWork(window(t, 16, 20)))
	})
}

func TestCourier_ZeroValueIsInvalid(t *testing.T) {
	var c courier.Courier

	require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
}
