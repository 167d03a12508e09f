package services

import (
	"errors"
	"fmt"
	"sort"

	"couriermanagement/internal/core/domain/model/courier"
	"couriermanagement/internal/core/domain/model/delivery"
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/domain/model/vehicle"
)

// ErrPlanInvalid is returned when a generation plan is structurally invalid.
// It is fatal and reported before any delivery is committed.
var ErrPlanInvalid = errors.New("generation plan is invalid")

// PlanInvalidError describes the structural defect that failed the pre-commit
// validation pass. Unwraps to ErrPlanInvalid.
type PlanInvalidError struct {
	Detail string
	Cause  error
}

func (e *PlanInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPlanInvalid, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPlanInvalid, e.Detail)
}

func (e *PlanInvalidError) Unwrap() error {
	return ErrPlanInvalid
}

// RoutePlan pairs a route with the manifest it carries for one date.
type RoutePlan struct {
	Route    *route.Route
	Manifest route.Manifest
}

// DayPlan groups the routes to be generated for one delivery date.
// The plan is an ordered collection of explicit day groups rather than a map:
// route order within a day is preserved exactly as submitted, since callers
// pre-sort routes by priority.
type DayPlan struct {
	Date   kernel.Date
	Routes []RoutePlan
}

// UnassignedReason classifies why a route could not be assigned.
type UnassignedReason int

const (
	// ReasonUnknown is the zero value and never reported.
	ReasonUnknown UnassignedReason = iota
	// ReasonOutsideShift means no courier's shift covers the route window.
	ReasonOutsideShift
	// ReasonTimeConflict means every feasible pair failed on window overlap.
	ReasonTimeConflict
	// ReasonCapacityExceeded means the last rejection was a capacity failure.
	ReasonCapacityExceeded
	// ReasonNoResources means no courier/vehicle pair could even be tried.
	ReasonNoResources
)

// String returns the human-readable name of the reason.
func (r UnassignedReason) String() string {
	switch r {
	case ReasonOutsideShift:
		return "OutsideShift"
	case ReasonTimeConflict:
		return "TimeConflict"
	case ReasonCapacityExceeded:
		return "CapacityExceeded"
	case ReasonNoResources:
		return "NoResources"
	default:
		return "Unknown"
	}
}

// UnassignedRoute reports one route the planner could not place, with the last
// rejection reason seen while trying.
type UnassignedRoute struct {
	RouteID kernel.UUID
	Date    kernel.Date
	Reason  UnassignedReason
}

// GenerationResult is the outcome of one planning run. Partial success is the
// normal case: feasible routes are committed, infeasible ones reported.
type GenerationResult struct {
	Created    []*delivery.Delivery
	Unassigned []UnassignedRoute
}

// AssignmentPlanner allocates couriers and vehicles to a multi-day batch of
// routes, using the ConstraintValidator as its feasibility oracle.
//
// Algorithm (greedy with deterministic first-fit):
//  1. Days are processed in ascending date order; routes within a day in the
//     order supplied.
//  2. Courier and vehicle pools are sorted by identifier so repeated runs over
//     the same snapshot produce identical assignments.
//  3. (courier, vehicle) pairs are tried in pool order; the first pair the
//     validator accepts wins. The planner does not attempt global optimality,
//     only feasibility.
//  4. Each successful commit updates the per-resource busy bookkeeping before
//     the next route is attempted, so later routes in the same batch see
//     earlier commitments.
//  5. A route whose pools are exhausted is recorded as unassigned with the
//     last rejection reason; the batch continues.
//
// A fatal error is only raised for a structurally invalid plan, detected in a
// fail-fast pass before any commitment.
//
// Example usage:
//
//	planner := services.NewAssignmentPlanner()
//	result, err := planner.Generate(plan, couriers, vehicles, existing)
//	if errors.Is(err, services.ErrPlanInvalid) {
//	    // nothing was committed; reject the request
//	}
//	for _, u := range result.Unassigned {
//	    log.Printf("route %s on %s: %s", u.RouteID, u.Date, u.Reason)
//	}
type AssignmentPlanner struct {
	validator ConstraintValidator
}

// NewAssignmentPlanner creates a planner backed by a ConstraintValidator.
func NewAssignmentPlanner() AssignmentPlanner {
	return AssignmentPlanner{
		validator: NewConstraintValidator(),
	}
}

// Generate produces a feasible assignment for the plan against the supplied
// resource snapshot. The existing deliveries seed the busy bookkeeping so new
// assignments never collide with commitments made outside this batch.
func (p AssignmentPlanner) Generate(
	plan []DayPlan,
	couriers []*courier.Courier,
	vehicles []*vehicle.Vehicle,
	existing []*delivery.Delivery,
) (GenerationResult, error) {
	if err := p.validatePlan(plan, couriers, vehicles); err != nil {
		return GenerationResult{}, err
	}

	days := make([]DayPlan, len(plan))
	copy(days, plan)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	courierPool := sortedCouriers(couriers)
	vehiclePool := sortedVehicles(vehicles)

	book := newResourceBook(existing)

	result := GenerationResult{
		Created:    make([]*delivery.Delivery, 0),
		Unassigned: make([]UnassignedRoute, 0),
	}

	for _, day := range days {
		for _, rp := range day.Routes {
			created, reason, err := p.assignRoute(day.Date, rp, courierPool, vehiclePool, book)
			if err != nil {
				return GenerationResult{}, err
			}
			if created == nil {
				result.Unassigned = append(result.Unassigned, UnassignedRoute{
					RouteID: rp.Route.ID(),
					Date:    day.Date,
					Reason:  reason,
				})
				continue
			}
			result.Created = append(result.Created, created)
		}
	}

	return result, nil
}

// assignRoute tries (courier, vehicle) pairs in pool order until the validator
// accepts one. It returns the committed delivery, or a nil delivery with the
// reason the route stayed unassigned.
func (p AssignmentPlanner) assignRoute(
	date kernel.Date,
	rp RoutePlan,
	courierPool []*courier.Courier,
	vehiclePool []*vehicle.Vehicle,
	book *resourceBook,
) (*delivery.Delivery, UnassignedReason, error) {
	reason := ReasonNoResources

	for _, c := range courierPool {
		for _, v := range vehiclePool {
			candidate := Candidate{
				Route:    rp.Route,
				Date:     date,
				Courier:  c,
				Vehicle:  v,
				Manifest: rp.Manifest,
			}

			acceptance, err := p.validator.Validate(
				candidate,
				book.courierDeliveries(c.ID(), date),
				book.vehicleDeliveries(v.ID(), date),
			)
			switch {
			case errors.Is(err, ErrOutsideShift):
				reason = ReasonOutsideShift
				continue
			case errors.Is(err, ErrTimeConflict):
				reason = ReasonTimeConflict
				continue
			case errors.Is(err, ErrCapacityExceeded):
				reason = ReasonCapacityExceeded
				continue
			case err != nil:
				return nil, ReasonUnknown, err
			}

			d, err := delivery.NewDelivery(
				kernel.NewUUID(),
				rp.Route.ID(),
				c.ID(),
				v.ID(),
				date,
				acceptance.Window,
				acceptance.TotalWeight,
				acceptance.TotalVolume,
			)
			if err != nil {
				return nil, ReasonUnknown, err
			}

			// Busy bookkeeping must be updated before the next route is
			// attempted: later routes depend on this commitment.
			book.commit(d)

			return d, ReasonUnknown, nil
		}
	}

	return nil, reason, nil
}

// validatePlan is the fail-fast structural pass: it rejects the whole batch
// before any commitment when the input cannot possibly be planned.
func (p AssignmentPlanner) validatePlan(
	plan []DayPlan,
	couriers []*courier.Courier,
	vehicles []*vehicle.Vehicle,
) error {
	if len(plan) == 0 {
		return &PlanInvalidError{Detail: "plan contains no days"}
	}

	for _, day := range plan {
		if err := day.Date.Validate(); err != nil {
			return &PlanInvalidError{Detail: "day has no valid date", Cause: err}
		}
		if len(day.Routes) == 0 {
			return &PlanInvalidError{Detail: fmt.Sprintf("day %s contains no routes", day.Date)}
		}
		for _, rp := range day.Routes {
			if err := rp.Route.Validate(); err != nil {
				return &PlanInvalidError{Detail: fmt.Sprintf("day %s has an invalid route", day.Date), Cause: err}
			}
			if err := rp.Manifest.Validate(); err != nil {
				return &PlanInvalidError{
					Detail: fmt.Sprintf("route %s on %s has an invalid manifest", rp.Route.ID(), day.Date),
					Cause:  err,
				}
			}
		}
	}

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return &PlanInvalidError{Detail: "courier snapshot contains an invalid courier", Cause: err}
		}
	}
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return &PlanInvalidError{Detail: "vehicle snapshot contains an invalid vehicle", Cause: err}
		}
	}

	return nil
}

func sortedCouriers(couriers []*courier.Courier) []*courier.Courier {
	pool := make([]*courier.Courier, len(couriers))
	copy(pool, couriers)
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].ID().String() < pool[j].ID().String()
	})
	return pool
}

func sortedVehicles(vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	pool := make([]*vehicle.Vehicle, len(vehicles))
	copy(pool, vehicles)
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].ID().String() < pool[j].ID().String()
	})
	return pool
}

// resourceBook tracks which deliveries occupy each courier and vehicle per
// date, seeded with pre-existing deliveries and updated on every commit.
type resourceBook struct {
	byCourier map[string][]*delivery.Delivery
	byVehicle map[string][]*delivery.Delivery
}

func newResourceBook(existing []*delivery.Delivery) *resourceBook {
	book := &resourceBook{
		byCourier: make(map[string][]*delivery.Delivery),
		byVehicle: make(map[string][]*delivery.Delivery),
	}
	for _, d := range existing {
		book.commit(d)
	}
	return book
}

func (b *resourceBook) commit(d *delivery.Delivery) {
	ck := resourceDateKey(d.CourierID(), d.Date())
	vk := resourceDateKey(d.VehicleID(), d.Date())
	b.byCourier[ck] = append(b.byCourier[ck], d)
	b.byVehicle[vk] = append(b.byVehicle[vk], d)
}

func (b *resourceBook) courierDeliveries(id kernel.UUID, date kernel.Date) []*delivery.Delivery {
	return b.byCourier[resourceDateKey(id, date)]
}

func (b *resourceBook) vehicleDeliveries(id kernel.UUID, date kernel.Date) []*delivery.Delivery {
	return b.byVehicle[resourceDateKey(id, date)]
}

func resourceDateKey(id kernel.UUID, date kernel.Date) string {
	return id.String() + "@" + date.String()
}
