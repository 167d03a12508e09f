// Package vehicle contains the Vehicle aggregate.
//
// A vehicle is a delivery resource with weight and volume capacity ceilings.
// Capacity feasibility of a candidate delivery is decided by the assignment
// engine; the vehicle only answers whether a given demand fits.
package vehicle

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate number.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrMaxWeightIsInvalid is returned when a vehicle's weight capacity is not positive.
	ErrMaxWeightIsInvalid = errs.NewValueIsInvalidError("max weight must be greater than 0")
	// ErrMaxVolumeIsInvalid is returned when a vehicle's volume capacity is not positive.
	ErrMaxVolumeIsInvalid = errs.NewValueIsInvalidError("max volume must be greater than 0")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a delivery vehicle in the fleet.
// It is an aggregate root holding the vehicle's identity and capacity limits.
//
// Business rules:
//   - Vehicle must have a valid UUID, a non-empty plate and positive capacities
//   - A vehicle never holds two deliveries with overlapping windows on the
//     same date (enforced by the assignment engine, invariant on the data)
//   - Cargo fits when demand is less than or equal to capacity in both
//     dimensions; equality is accepted
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// plate is the registration plate of the vehicle
	plate string
	// maxWeight is the weight capacity ceiling in kilograms
	maxWeight int
	// maxVolume is the volume capacity ceiling in litres
	maxVolume int
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified parameters.
// Plate must be non-empty; both capacity ceilings must be positive.
func NewVehicle(id kernel.UUID, plate string, maxWeight, maxVolume int) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setMaxWeight(maxWeight),
		v.setMaxVolume(maxVolume),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(id kernel.UUID, plate string, maxWeight, maxVolume int) (*Vehicle, error) {
	return NewVehicle(id, plate, maxWeight, maxVolume)
}

// IsEqual compares two vehicles for equality based on their identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks that the Vehicle was created through its constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the vehicle's registration plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// MaxWeight returns the weight capacity ceiling in kilograms.
func (v *Vehicle) MaxWeight() int {
	return v.maxWeight
}

// MaxVolume returns the volume capacity ceiling in litres.
func (v *Vehicle) MaxVolume() int {
	return v.maxVolume
}

// CanCarry reports whether the given demand fits the vehicle's capacity.
// Equality is accepted in both dimensions.
func (v *Vehicle) CanCarry(weight, volume int) bool {
	return weight <= v.maxWeight && volume <= v.maxVolume
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	v.plate = plate
	return nil
}

func (v *Vehicle) setMaxWeight(maxWeight int) error {
	if maxWeight <= 0 {
		return ErrMaxWeightIsInvalid
	}

	v.maxWeight = maxWeight
	return nil
}

func (v *Vehicle) setMaxVolume(maxVolume int) error {
	if maxVolume <= 0 {
		return ErrMaxVolumeIsInvalid
	}

	v.maxVolume = maxVolume
	return nil
}
