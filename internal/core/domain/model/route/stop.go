package route

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for stop construction.
var (
	// ErrAddressIsRequired is returned when creating a stop without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrSequenceIsInvalid is returned when a stop's sequence number is negative.
	ErrSequenceIsInvalid = errs.NewValueIsInvalidError("sequence must not be negative")
	// ErrStopIsNotConstructed is returned when using an improperly initialized Stop.
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")
)

// Stop is an entity representing one visit on a route. Stops are ordered by
// their sequence number within the owning route.
type Stop struct {
	id       kernel.UUID
	sequence int
	address  string

	guard guard.ConstructorGuard
}

// NewStop creates a Stop. Sequence starts at 0 and must not be negative;
// address must be non-empty.
func NewStop(id kernel.UUID, sequence int, address string) (*Stop, error) {
	s := &Stop{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSequence(sequence),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStop reconstructs a Stop from persistent storage.
func RestoreStop(id kernel.UUID, sequence int, address string) (*Stop, error) {
	return NewStop(id, sequence, address)
}

// Validate checks that the Stop was created through its constructor.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// ID returns the stop identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// Sequence returns the position of the stop within its route.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Address returns the stop's address.
func (s *Stop) Address() string {
	return s.address
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Stop) setSequence(sequence int) error {
	if sequence < 0 {
		return ErrSequenceIsInvalid
	}

	s.sequence = sequence
	return nil
}

func (s *Stop) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	s.address = address
	return nil
}
