package kernel

import (
	"time"

	"couriermanagement/internal/pkg/errs"
)

// DateFormat is the canonical textual representation of a Date.
const DateFormat = "2006-01-02"

// ErrDateIsNotConstructed indicates a zero-value Date that bypassed the
// constructor functions.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"Date must be created via NewDate, DateFromTime, or DateFromString")

// Date is a value object representing a calendar day without a time component.
// Internally it is anchored at UTC midnight, so two Dates built from different
// time zones but naming the same calendar day compare equal.
//
// The zero value is invalid; construct instances with NewDate, DateFromTime or
// DateFromString.
//
// Example:
//
//	deliveryDate := kernel.NewDate(2025, time.January, 30)
//	dispatchAt := deliveryDate.At(window.Start())
type Date struct {
	day time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{day: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates a time.Time to its calendar day.
// The day is taken in the location of t, then anchored at UTC midnight.
func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// DateFromString parses a Date from its "2006-01-02" representation.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

// String returns the "2006-01-02" representation of the date.
func (d Date) String() string {
	return d.day.Format(DateFormat)
}

// At combines the date with a time of day into a concrete instant (UTC).
func (d Date) At(t TimeOfDay) time.Time {
	return d.day.Add(time.Duration(t.MinutesFromMidnight()) * time.Minute)
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return Date{day: d.day.AddDate(0, 0, days)}
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.day.Before(other.day)
}

// IsEqual reports whether two Dates name the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.day.Equal(other.day)
}

// Time returns the underlying UTC midnight instant for persistence adapters.
func (d Date) Time() time.Time {
	return d.day
}

// Validate returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.day.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
