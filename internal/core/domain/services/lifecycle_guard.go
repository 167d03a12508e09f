package services

import (
	"errors"
	"fmt"
	"time"

	"couriermanagement/internal/core/domain/model/delivery"
)

// Sentinel errors for mutation denials. Both are distinct from not-found so
// callers can map them to different outward signals.
var (
	// ErrStatusLocked is returned when a delivery's status has advanced past
	// Created and edit/delete are no longer permitted.
	ErrStatusLocked = errors.New("delivery status does not permit mutation")
	// ErrEditWindowClosed is returned when the edit cutoff before the delivery
	// day has passed.
	ErrEditWindowClosed = errors.New("delivery edit window is closed")
)

// StatusLockedError reports the status that blocked the mutation.
// Unwraps to ErrStatusLocked.
type StatusLockedError struct {
	Current delivery.Status
}

func (e *StatusLockedError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrStatusLocked, e.Current)
}

func (e *StatusLockedError) Unwrap() error {
	return ErrStatusLocked
}

// EditWindowClosedError reports the deadline that already passed.
// Unwraps to ErrEditWindowClosed.
type EditWindowClosedError struct {
	Deadline time.Time
	Now      time.Time
}

func (e *EditWindowClosedError) Error() string {
	return fmt.Sprintf("%s: deadline was %s", ErrEditWindowClosed, e.Deadline.Format(time.RFC3339))
}

func (e *EditWindowClosedError) Unwrap() error {
	return ErrEditWindowClosed
}

// LifecycleGuard decides whether an existing delivery may still be edited or
// deleted. Mutation is permitted only while the delivery is in Created status
// and the current time is still before the edit deadline: the start of the
// delivery day minus the configured cutoff.
//
// The cutoff is configuration, not a hardcoded rule. The guard is a pure
// function of the delivery's status, its date and the supplied clock reading,
// and is monotonic: once it denies with ErrEditWindowClosed for some instant,
// it denies for every later instant.
//
// Example usage:
//
//	g := services.NewLifecycleGuard(12 * time.Hour)
//	if err := g.CanMutate(d, time.Now()); err != nil {
//	    switch {
//	    case errors.Is(err, services.ErrStatusLocked):
//	        // delivery already dispatched, completed or cancelled
//	    case errors.Is(err, services.ErrEditWindowClosed):
//	        // too close to the delivery day
//	    }
//	}
type LifecycleGuard struct {
	editCutoff time.Duration
}

// NewLifecycleGuard creates a guard with the configured edit cutoff: the
// minimum lead time before the delivery day during which edits are refused.
func NewLifecycleGuard(editCutoff time.Duration) LifecycleGuard {
	return LifecycleGuard{editCutoff: editCutoff}
}

// EditCutoff returns the configured cutoff duration.
func (g LifecycleGuard) EditCutoff() time.Duration {
	return g.editCutoff
}

// CanMutate returns nil when edit/delete is permitted for the delivery at the
// given instant, a StatusLockedError when the status has advanced past
// Created, and an EditWindowClosedError when the cutoff has passed. The status
// check runs first.
func (g LifecycleGuard) CanMutate(d *delivery.Delivery, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if d.Status() != delivery.Created {
		return &StatusLockedError{Current: d.Status()}
	}

	deadline := g.EditDeadline(d)
	if !now.Before(deadline) {
		return &EditWindowClosedError{Deadline: deadline, Now: now}
	}

	return nil
}

// EditDeadline returns the last instant at which the delivery may still be
// mutated: the start of its delivery day minus the cutoff.
func (g LifecycleGuard) EditDeadline(d *delivery.Delivery) time.Time {
	return d.Date().Time().Add(-g.editCutoff)
}
