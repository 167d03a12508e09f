package courier

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root holding the courier's identity and working hours.
//
// Key responsibilities:
//   - Managing courier identity (ID, name)
//   - Exposing the working-hours shift used for availability decisions
//   - Answering whether a route window fits within the shift
//
// Business rules:
//   - Courier must have a valid UUID, a non-empty name and a valid shift
//   - A courier never holds two deliveries with overlapping windows on the
//     same date (enforced by the assignment engine, invariant on the data)
//
// Example usage:
//
//	shift, _ := kernel.NewTimeWindow(eight, eighteen)
//	courier, err := NewCourier(kernel.NewUUID(), "Alice", shift)
//	if err != nil {
//	    // handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// shift is the courier's daily working-hours window
	shift kernel.TimeWindow
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - shift: daily working-hours window (must be a valid TimeWindow)
//
// Returns the fully initialized courier or an aggregated validation error.
func NewCourier(id kernel.UUID, name string, shift kernel.TimeWindow) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setShift(shift),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// The restored courier behaves identically to one created through NewCourier.
func RestoreCourier(id kernel.UUID, name string, shift kernel.TimeWindow) (*Courier, error) {
	return NewCourier(id, name, shift)
}

// IsEqual compares two couriers for equality based on their identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Courier was created through its constructor.
// The zero value of Courier is invalid and fails this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Shift returns the courier's daily working-hours window.
func (c *Courier) Shift() kernel.TimeWindow {
	return c.shift
}

// CanWork reports whether the given route window lies entirely within the
// courier's shift.
func (c *Courier) CanWork(window kernel.TimeWindow) bool {
	return c.shift.Contains(window)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setShift(shift kernel.TimeWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	c.shift = shift
	return nil
}
