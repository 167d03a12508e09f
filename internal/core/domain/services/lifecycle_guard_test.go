package services_test

import (
	"testing"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedDelivery(t *testing.T, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testDate(), testWindow(t, 9, 0, 10, 0), 100, 100, status)
	require.NoError(t, err)
	return d
}

func TestLifecycleGuard_CanMutate_AllowedBeforeCutoff(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	d := guardedDelivery(t, delivery.Created)

	// Two days before the delivery day: well outside the cutoff.
	now := d.Date().AddDays(-2).Time()

	require.NoError(t, g.CanMutate(d, now))
}

func TestLifecycleGuard_CanMutate_DeniedWithinCutoff(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	d := guardedDelivery(t, delivery.Created)

	// Delivery dispatches at 09:00; 13 hours before dispatch is 20:00 the
	// previous evening, already inside the 12 hour cutoff before the
	// delivery day. Status alone would still permit the edit.
	dispatchAt := d.Date().At(d.Window().Start())
	now := dispatchAt.Add(-13 * time.Hour)

	err := g.CanMutate(d, now)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrEditWindowClosed)
	require.NotErrorIs(t, err, services.ErrStatusLocked)
}

func TestLifecycleGuard_CanMutate_DeniedAtExactDeadline(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	d := guardedDelivery(t, delivery.Created)

	deadline := g.EditDeadline(d)

	require.NoError(t, g.CanMutate(d, deadline.Add(-time.Second)))
	require.ErrorIs(t, g.CanMutate(d, deadline), services.ErrEditWindowClosed)
}

func TestLifecycleGuard_CanMutate_MonotonicDenial(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	d := guardedDelivery(t, delivery.Created)

	deniedAt := g.EditDeadline(d)
	require.ErrorIs(t, g.CanMutate(d, deniedAt), services.ErrEditWindowClosed)

	// Once denied, every later instant must be denied too.
	for _, delta := range []time.Duration{time.Minute, time.Hour, 48 * time.Hour} {
		require.ErrorIs(t, g.CanMutate(d, deniedAt.Add(delta)), services.ErrEditWindowClosed)
	}
}

func TestLifecycleGuard_CanMutate_StatusGating(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	// Far before the cutoff, so only status can deny.
	now := testDate().AddDays(-30).Time()

	testCases := []struct {
		status  delivery.Status
		allowed bool
	}{
		{delivery.Created, true},
		{delivery.InProgress, false},
		{delivery.Completed, false},
		{delivery.Cancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			d := guardedDelivery(t, tc.status)

			err := g.CanMutate(d, now)

			if tc.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, services.ErrStatusLocked)

			var locked *services.StatusLockedError
			require.ErrorAs(t, err, &locked)
			assert.Equal(t, tc.status, locked.Current)
		})
	}
}

func TestLifecycleGuard_CanMutate_StatusCheckedBeforeCutoff(t *testing.T) {
	g := services.NewLifecycleGuard(12 * time.Hour)
	d := guardedDelivery(t, delivery.Cancelled)

	// Inside the cutoff and status-barred: status wins.
	err := g.CanMutate(d, d.Date().Time())

	require.ErrorIs(t, err, services.ErrStatusLocked)
	require.NotErrorIs(t, err, services.ErrEditWindowClosed)
}

func TestLifecycleGuard_CanMutate_ZeroCutoffAllowsUntilDeliveryDay(t *testing.T) {
	g := services.NewLifecycleGuard(0)
	d := guardedDelivery(t, delivery.Created)

	dayStart := d.Date().Time()

	require.NoError(t, g.CanMutate(d, dayStart.Add(-time.Second)))
	require.ErrorIs(t, g.CanMutate(d, dayStart), services.ErrEditWindowClosed)
}
