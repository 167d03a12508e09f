package delivery

import (
	"errors"
	"fmt"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrTotalWeightIsInvalid is returned when a delivery's load weight is not positive.
	ErrTotalWeightIsInvalid = errs.NewValueIsInvalidError("total weight must be greater than 0")
	// ErrTotalVolumeIsInvalid is returned when a delivery's load volume is not positive.
	ErrTotalVolumeIsInvalid = errs.NewValueIsInvalidError("total volume must be greater than 0")
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrInvalidStatusTransition is returned when a lifecycle transition would move backwards or skip.
	ErrInvalidStatusTransition = errors.New("invalid delivery status transition")
	// ErrDeliveryIsNotEditable is returned when reassigning a delivery whose status is past Created.
	ErrDeliveryIsNotEditable = errors.New("delivery can only be edited in Created status")
)

// Delivery is the central aggregate of the domain: a route assigned to a
// courier and a vehicle on a concrete date.
//
// The window is the route's window instantiated for the delivery; the load
// totals are the manifest demand computed at validation time. Both are stored
// so that invariant checks against other deliveries need no recomputation.
//
// Key responsibilities:
//   - Holding the (route, courier, vehicle, date) assignment
//   - Enforcing the forward-only status lifecycle
//   - Restricting reassignment to deliveries still in Created status
//
// Deliveries are created by the assignment planner (batch) or by the manual
// create path, always after the constraint validator accepted the candidate.
type Delivery struct {
	id          kernel.UUID
	routeID     kernel.UUID
	courierID   kernel.UUID
	vehicleID   kernel.UUID
	date        kernel.Date
	window      kernel.TimeWindow
	totalWeight int
	totalVolume int
	status      Status

	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in Created status.
// All references must be valid and the load totals positive. The window and
// totals are expected to come from a validator acceptance.
func NewDelivery(
	id kernel.UUID,
	routeID kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
	totalWeight int,
	totalVolume int,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}
	d.status = Created

	if err := errors.Join(
		d.setID(id),
		d.setAssignment(routeID, courierID, vehicleID, date, window),
		d.setLoad(totalWeight, totalVolume),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage,
// including its persisted status.
func RestoreDelivery(
	id kernel.UUID,
	routeID kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
	totalWeight int,
	totalVolume int,
	status Status,
) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAssignment(routeID, courierID, vehicleID, date, window),
		d.setLoad(totalWeight, totalVolume),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two deliveries for equality based on their identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks that the Delivery was created through its constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the unique identifier of the delivery.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// RouteID returns the identifier of the assigned route.
func (d *Delivery) RouteID() kernel.UUID {
	return d.routeID
}

// CourierID returns the identifier of the assigned courier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// VehicleID returns the identifier of the assigned vehicle.
func (d *Delivery) VehicleID() kernel.UUID {
	return d.vehicleID
}

// Date returns the delivery date.
func (d *Delivery) Date() kernel.Date {
	return d.date
}

// Window returns the delivery's execution window on its date.
func (d *Delivery) Window() kernel.TimeWindow {
	return d.window
}

// TotalWeight returns the manifest weight demand in kilograms.
func (d *Delivery) TotalWeight() int {
	return d.totalWeight
}

// TotalVolume returns the manifest volume demand in litres.
func (d *Delivery) TotalVolume() int {
	return d.totalVolume
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Start advances the delivery from Created to InProgress.
func (d *Delivery) Start() error {
	return d.transitionTo(InProgress)
}

// Complete advances the delivery from InProgress to Completed.
func (d *Delivery) Complete() error {
	return d.transitionTo(Completed)
}

// Cancel moves the delivery into the terminal Cancelled status.
// Allowed from Created and InProgress.
func (d *Delivery) Cancel() error {
	return d.transitionTo(Cancelled)
}

// Reassign replaces the delivery's assignment with a new validated candidate.
// Only permitted while the delivery is still in Created status; time-based
// gating is the lifecycle guard's concern and happens before this call.
func (d *Delivery) Reassign(
	routeID kernel.UUID,
	courierID kernel.UUID,
	vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
	totalWeight int,
	totalVolume int,
) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != Created {
		return ErrDeliveryIsNotEditable
	}

	return errors.Join(
		d.setAssignment(routeID, courierID, vehicleID, date, window),
		d.setLoad(totalWeight, totalVolume),
	)
}

func (d *Delivery) transitionTo(target Status) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, d.status, target)
	}

	d.status = target
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Delivery) setAssignment(
	routeID, courierID, vehicleID kernel.UUID,
	date kernel.Date,
	window kernel.TimeWindow,
) error {
	if err := errors.Join(
		routeID.Validate(),
		courierID.Validate(),
		vehicleID.Validate(),
		date.Validate(),
		window.Validate(),
	); err != nil {
		return err
	}

	d.routeID = routeID
	d.courierID = courierID
	d.vehicleID = vehicleID
	d.date = date
	d.window = window
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

func (d *Delivery) setLoad(totalWeight, totalVolume int) error {
	if totalWeight <= 0 {
		return ErrTotalWeightIsInvalid
	}
	if totalVolume <= 0 {
		return ErrTotalVolumeIsInvalid
	}

	d.totalWeight = totalWeight
	d.totalVolume = totalVolume
	return nil
}
