package product

import (
	"errors"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWeightIsInvalid is returned when a product's unit weight is not positive.
	ErrWeightIsInvalid = errs.NewValueIsInvalidError("weight must be greater than 0")
	// ErrVolumeIsInvalid is returned when a product's unit volume is not positive.
	ErrVolumeIsInvalid = errs.NewValueIsInvalidError("volume must be greater than 0")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is reference data describing a deliverable good. Its unit weight and
// unit volume determine the cargo demand a manifest places on a vehicle.
//
// Weight is expressed in kilograms and volume in litres, both per single unit.
// Products are immutable once created.
type Product struct {
	id     kernel.UUID
	name   string
	weight int
	volume int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product. Name must be non-empty; weight and volume must
// be positive.
func NewProduct(id kernel.UUID, name string, weight, volume int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setWeight(weight),
		p.setVolume(volume),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(id kernel.UUID, name string, weight, volume int) (*Product, error) {
	return NewProduct(id, name, weight, volume)
}

// Validate checks that the Product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Weight returns the weight of a single unit in kilograms.
func (p *Product) Weight() int {
	return p.weight
}

// Volume returns the volume of a single unit in litres.
func (p *Product) Volume() int {
	return p.volume
}

// IsEqual compares products by identity.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setWeight(weight int) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	p.weight = weight
	return nil
}

func (p *Product) setVolume(volume int) error {
	if volume <= 0 {
		return ErrVolumeIsInvalid
	}

	p.volume = volume
	return nil
}
