// Package kernel contains the shared value objects of the courier management
// domain: UUID identifiers, calendar dates, times of day and time windows.
//
// All types in this package are immutable value objects. Their zero values are
// invalid; instances must be created through the provided constructor functions,
// which enforce the validation rules of each type. Time windows implement the
// half-open overlap semantics the scheduling engine depends on: two windows
// [s1,e1) and [s2,e2) conflict iff s1 < e2 and s2 < e1, so a window starting
// exactly when another ends is not a conflict.
package kernel
