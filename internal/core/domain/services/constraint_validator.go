package services

import (
	"errors"
	"fmt"
	"time"

	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/domain/model/vehicle"
)

// Sentinel errors for candidate rejections. All are recoverable: a caller may
// retry the candidate with a different courier or vehicle.
var (
	// ErrOutsideShift is returned when a candidate's window does not lie
	// within the courier's working-hours shift.
	ErrOutsideShift = errors.New("outside shift")
	// ErrTimeConflict is returned when a candidate's window overlaps another
	// delivery of the same courier or vehicle on the same date.
	ErrTimeConflict = errors.New("time conflict")
	// ErrCapacityExceeded is returned when a candidate's cargo demand exceeds
	// the vehicle's capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// OutsideShiftError reports a candidate window falling outside the courier's
// shift. Unwraps to ErrOutsideShift.
type OutsideShiftError struct {
	CourierID kernel.UUID
	Shift     kernel.TimeWindow
	Window    kernel.TimeWindow
}

func (e *OutsideShiftError) Error() string {
	return fmt.Sprintf("%s: courier %s shift %s does not cover window %s",
		ErrOutsideShift, e.CourierID, e.Shift, e.Window)
}

func (e *OutsideShiftError) Unwrap() error {
	return ErrOutsideShift
}

// ResourceKind names the resource side of a time conflict.
type ResourceKind string

// Resource kinds reported in TimeConflictError.
const (
	ResourceCourier ResourceKind = "courier"
	ResourceVehicle ResourceKind = "vehicle"
)

// TimeConflictError reports which resource already holds an overlapping
// delivery. Unwraps to ErrTimeConflict.
type TimeConflictError struct {
	Resource    ResourceKind
	ResourceID  kernel.UUID
	Conflicting kernel.UUID
	Window      kernel.TimeWindow
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s already holds delivery %s overlapping %s",
		ErrTimeConflict, e.Resource, e.ResourceID, e.Conflicting, e.Window)
}

func (e *TimeConflictError) Unwrap() error {
	return ErrTimeConflict
}

// CapacityDimension names the capacity dimension that was exceeded.
type CapacityDimension string

// Capacity dimensions reported in CapacityExceededError.
const (
	DimensionWeight CapacityDimension = "weight"
	DimensionVolume CapacityDimension = "volume"
)

// CapacityExceededError reports the dimension and amounts of a capacity
// rejection. Unwraps to ErrCapacityExceeded.
type CapacityExceededError struct {
	Dimension CapacityDimension
	Demand    int
	Capacity  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s demand %d exceeds vehicle capacity %d",
		ErrCapacityExceeded, e.Dimension, e.Demand, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// Candidate is a transient (route, date, courier, vehicle, manifest) tuple not
// yet committed as a delivery. It exists only while being validated and is
// discarded once accepted or rejected.
type Candidate struct {
	Route    *route.Route
	Date     kernel.Date
	Courier  *courier.Courier
	Vehicle  *vehicle.Vehicle
	Manifest route.Manifest
}

// Validate checks that all candidate references are properly constructed.
func (c Candidate) Validate() error {
	return errors.Join(
		c.Route.Validate(),
		c.Date.Validate(),
		c.Courier.Validate(),
		c.Vehicle.Validate(),
		c.Manifest.Validate(),
	)
}

// Acceptance is the result of a successful validation. It carries the
// instantiated window and load totals so callers can commit the delivery
// without recomputing them.
type Acceptance struct {
	// Window is the route window the delivery will occupy on its date.
	Window kernel.TimeWindow
	// DispatchAt is the concrete start instant (date + window start).
	DispatchAt time.Time
	// ArrivalAt is the concrete end instant (date + window end).
	ArrivalAt time.Time
	// TotalWeight is the manifest weight demand in kilograms.
	TotalWeight int
	// TotalVolume is the manifest volume demand in litres.
	TotalVolume int
}

// ConstraintValidator is the feasibility oracle of the assignment engine.
// Given one candidate plus the snapshot of the courier's and vehicle's other
// deliveries on the same date, it decides whether committing the candidate
// would preserve the scheduling invariants.
//
// Checks run in order with the first failure winning:
//  1. Shift feasibility: the candidate window must lie entirely within the
//     courier's working-hours shift.
//  2. Time feasibility: the candidate window must not overlap any supplied
//     delivery of the same courier or vehicle on the candidate date. Windows
//     are half-open; touching endpoints do not conflict.
//  3. Capacity feasibility: manifest demand must not exceed the vehicle's
//     weight and volume ceilings. Equality is accepted.
//
// Rejections are typed (OutsideShiftError, TimeConflictError,
// CapacityExceededError), never generic, so batch planning can retry with
// different resources instead of aborting. The validator is a pure function
// of its inputs and is safe to call concurrently.
//
// Example usage:
//
//	validator := services.NewConstraintValidator()
//	acceptance, err := validator.Validate(candidate, courierDeliveries, vehicleDeliveries)
//	switch {
//	case errors.Is(err, services.ErrOutsideShift):
//	    // try another courier
//	case errors.Is(err, services.ErrTimeConflict):
//	    // try another courier or vehicle
//	case errors.Is(err, services.ErrCapacityExceeded):
//	    // try a bigger vehicle
//	case err != nil:
//	    // structurally invalid candidate
//	}
type ConstraintValidator struct{}

// NewConstraintValidator creates a new ConstraintValidator instance.
func NewConstraintValidator() ConstraintValidator {
	return ConstraintValidator{}
}

// Validate checks the candidate against the supplied snapshots and returns an
// acceptance with the computed window and load totals, or a typed rejection.
// Structural problems (improperly constructed references) surface as plain
// validation errors distinct from the two rejection types.
func (v ConstraintValidator) Validate(
	candidate Candidate,
	courierDeliveries []*delivery.Delivery,
	vehicleDeliveries []*delivery.Delivery,
) (Acceptance, error) {
	if err := candidate.Validate(); err != nil {
		return Acceptance{}, err
	}

	window := candidate.Route.Window()

	if !candidate.Courier.CanWork(window) {
		return Acceptance{}, &OutsideShiftError{
			CourierID: candidate.Courier.ID(),
			Shift:     candidate.Courier.Shift(),
			Window:    window,
		}
	}

	if err := v.checkNoOverlap(
		ResourceCourier, candidate.Courier.ID(), candidate.Date, window, courierDeliveries,
	); err != nil {
		return Acceptance{}, err
	}
	if err := v.checkNoOverlap(
		ResourceVehicle, candidate.Vehicle.ID(), candidate.Date, window, vehicleDeliveries,
	); err != nil {
		return Acceptance{}, err
	}

	totalWeight := candidate.Manifest.TotalWeight()
	totalVolume := candidate.Manifest.TotalVolume()

	if !candidate.Vehicle.CanCarry(totalWeight, totalVolume) {
		if totalWeight > candidate.Vehicle.MaxWeight() {
			return Acceptance{}, &CapacityExceededError{
				Dimension: DimensionWeight,
				Demand:    totalWeight,
				Capacity:  candidate.Vehicle.MaxWeight(),
			}
		}
		return Acceptance{}, &CapacityExceededError{
			Dimension: DimensionVolume,
			Demand:    totalVolume,
			Capacity:  candidate.Vehicle.MaxVolume(),
		}
	}

	return Acceptance{
		Window:      window,
		DispatchAt:  candidate.Date.At(window.Start()),
		ArrivalAt:   candidate.Date.At(window.End()),
		TotalWeight: totalWeight,
		TotalVolume: totalVolume,
	}, nil
}

// checkNoOverlap scans the snapshot for a delivery of the same date whose
// window overlaps the candidate window.
func (v ConstraintValidator) checkNoOverlap(
	kind ResourceKind,
	resourceID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
	others []*delivery.Delivery,
) error {
	for _, other := range others {
		if err := other.Validate(); err != nil {
			return err
		}
		if !other.Date().IsEqual(date) {
			continue
		}
		if window.Overlaps(other.Window()) {
			return &TimeConflictError{
				Resource:    kind,
				ResourceID:  resourceID,
				Conflicting: other.ID(),
				Window:      other.Window(),
			}
		}
	}
	return nil
}
