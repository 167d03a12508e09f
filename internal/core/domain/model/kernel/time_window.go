package kernel

import (
	"fmt"
	"time"

	"couriermanagement/internal/pkg/errs"
)

// TimeOfDayFormat is the canonical textual representation of a TimeOfDay.
const TimeOfDayFormat = "15:04"

// Domain errors for time window construction.
var (
	// ErrWindowStartNotBeforeEnd is returned when a window's start does not
	// precede its end.
	ErrWindowStartNotBeforeEnd = errs.NewValueIsInvalidError("time window start must be before end")
	// ErrTimeWindowIsNotConstructed indicates a zero-value TimeWindow that
	// bypassed NewTimeWindow.
	ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
		"TimeWindow must be created via NewTimeWindow")
)

// TimeOfDay is a value object representing a wall-clock moment within a day,
// with minute precision. It carries no date and no time zone; combining it
// with a Date via Date.At produces a concrete instant.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// TimeOfDayFromString parses a TimeOfDay from its "15:04" representation.
func TimeOfDayFromString(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayFormat, s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// TimeOfDayFromMinutes creates a TimeOfDay from a minute offset (0-1439).
// Used when reconstructing value objects from persistence.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > 23*60+59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, 23*60+59)
	}
	return TimeOfDay{minutes: minutes}, nil
}

// MinutesFromMidnight returns the minute offset from midnight (0-1439).
func (t TimeOfDay) MinutesFromMidnight() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsEqual reports whether two TimeOfDay values name the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// String returns the "15:04" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// TimeWindow is a value object representing the half-open interval
// [start, end) within a single day. It models route execution windows and
// courier shifts.
//
// The zero value is invalid; construct instances with NewTimeWindow.
//
// Example:
//
//	start, _ := kernel.NewTimeOfDay(9, 0)
//	end, _ := kernel.NewTimeOfDay(10, 0)
//	window, err := kernel.NewTimeWindow(start, end)
type TimeWindow struct {
	start TimeOfDay
	end   TimeOfDay

	constructed bool
}

// NewTimeWindow creates a TimeWindow. The start must be strictly before the end.
func NewTimeWindow(start, end TimeOfDay) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrWindowStartNotBeforeEnd
	}
	return TimeWindow{start: start, end: end, constructed: true}, nil
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() TimeOfDay {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() TimeOfDay {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return time.Duration(w.end.minutes-w.start.minutes) * time.Minute
}

// Overlaps reports whether two windows conflict. The intervals are half-open:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 && s2 < e1, so a window that starts
// exactly when another ends does not overlap it.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.minutes < other.end.minutes && other.start.minutes < w.end.minutes
}

// Contains reports whether the other window lies entirely within w.
func (w TimeWindow) Contains(other TimeWindow) bool {
	return w.start.minutes <= other.start.minutes && other.end.minutes <= w.end.minutes
}

// IsEqual reports whether two windows have the same bounds.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.IsEqual(other.start) && w.end.IsEqual(other.end)
}

// String returns the "15:04-15:04" representation.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.start, w.end)
}

// Validate returns ErrTimeWindowIsNotConstructed for the zero value.
func (w TimeWindow) Validate() error {
	if !w.constructed {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}
