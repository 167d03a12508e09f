package kernel_test

import (
	"testing"
	"time"

	"couriermanagement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_AnchorsAtUTCMidnight(t *testing.T) {
	date := kernel.NewDate(2025, time.January, 30)

	require.NoError(t, date.Validate())
	assert.Equal(t, "2025-01-30", date.String())
	assert.Equal(t, time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC), date.Time())
}

func TestDateFromTime_TruncatesClock(t *testing.T) {
	instant := time.Date(2025, time.January, 30, 17, 45, 12, 0, time.UTC)

	date := kernel.DateFromTime(instant)

	assert.True(t, date.IsEqual(kernel.NewDate(2025, time.January, 30)))
}

func TestDateFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		date, err := kernel.DateFromString("2025-01-30")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-30", date.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.DateFromString("30.01.2025")
		require.Error(t, err)
	})
}

func TestDate_At_CombinesWithTimeOfDay(t *testing.T) {
	date := kernel.NewDate(2025, time.January, 30)
	nineThirty, err := kernel.NewTimeOfDay(9, 30)
	require.NoError(t, err)

	instant := date.At(nineThirty)

	assert.Equal(t, time.Date(2025, time.January, 30, 9, 30, 0, 0, time.UTC), instant)
}

func TestDate_AddDays_CrossesMonthBoundary(t *testing.T) {
	date := kernel.NewDate(2025, time.January, 30)

	assert.Equal(t, "2025-02-01", date.AddDays(2).String())
}

func TestDate_Before(t *testing.T) {
	earlier := kernel.NewDate(2025, time.January, 30)
	later := kernel.NewDate(2025, time.January, 31)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDate_ZeroValueIsInvalid(t *testing.T) {
	var date kernel.Date

	err := date.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
}
