package delivery

import (
	"fmt"

	"couriermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so that deliveries
// only ever advance forward through their lifecycle.
//
// State transitions:
//
//	Created ──> InProgress ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned by the planner or manual creation.
	// Only deliveries in this status may still be edited or deleted.
	Created

	// InProgress indicates dispatch has started for the delivery.
	InProgress

	// Completed indicates the delivery finished successfully. Terminal.
	Completed

	// Cancelled indicates the delivery was withdrawn. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, for validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// validTransitions defines the forward-only state machine.
func validTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:    {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a Status from its string representation.
// Used when reconstructing deliveries from persistence or API input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, InProgress, Completed and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. Terminal states admit no transitions.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
