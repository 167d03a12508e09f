package route

import (
	"errors"

	"couriermanagement/internal/core/domain/model/product"
	"couriermanagement/internal/pkg/errs"
	"couriermanagement/internal/pkg/guard"
)

// Domain errors for manifest construction.
var (
	// ErrQuantityIsInvalid is returned when a manifest item's quantity is not positive.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
	// ErrManifestIsEmpty is returned when creating a manifest without items.
	ErrManifestIsEmpty = errs.NewValueIsRequiredError("manifest items")
	// ErrManifestItemIsNotConstructed is returned when using an improperly initialized ManifestItem.
	ErrManifestItemIsNotConstructed = errors.New("ManifestItem must be created via NewManifestItem constructor")
	// ErrManifestIsNotConstructed is returned when using an improperly initialized Manifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest constructor")
)

// ManifestItem is a value object pairing a product with a quantity.
type ManifestItem struct {
	product  *product.Product
	quantity int

	guard guard.ConstructorGuard
}

// NewManifestItem creates a ManifestItem. The product must be valid and the
// quantity positive.
func NewManifestItem(p *product.Product, quantity int) (ManifestItem, error) {
	if err := p.Validate(); err != nil {
		return ManifestItem{}, err
	}
	if quantity <= 0 {
		return ManifestItem{}, ErrQuantityIsInvalid
	}

	return ManifestItem{
		product:  p,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the ManifestItem was created through its constructor.
func (i ManifestItem) Validate() error {
	return i.guard.Validate(ErrManifestItemIsNotConstructed)
}

// Product returns the item's product.
func (i ManifestItem) Product() *product.Product {
	return i.product
}

// Quantity returns the number of units carried.
func (i ManifestItem) Quantity() int {
	return i.quantity
}

// Weight returns the total weight of the item line in kilograms.
func (i ManifestItem) Weight() int {
	return i.product.Weight() * i.quantity
}

// Volume returns the total volume of the item line in litres.
func (i ManifestItem) Volume() int {
	return i.product.Volume() * i.quantity
}

// Manifest is a value object describing the cargo carried on one route
// instance for one delivery date. The manifest's weight and volume totals are
// the demand the assignment engine compares against vehicle capacity.
//
// A manifest must contain at least one item.
type Manifest struct {
	items []ManifestItem

	guard guard.ConstructorGuard
}

// NewManifest creates a Manifest from the given items. At least one item is
// required and every item must be valid.
func NewManifest(items []ManifestItem) (Manifest, error) {
	if len(items) == 0 {
		return Manifest{}, ErrManifestIsEmpty
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Manifest{}, err
		}
	}

	copied := make([]ManifestItem, len(items))
	copy(copied, items)

	return Manifest{
		items: copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Manifest was created through its constructor.
func (m Manifest) Validate() error {
	return m.guard.Validate(ErrManifestIsNotConstructed)
}

// Items returns the manifest lines in their original order.
func (m Manifest) Items() []ManifestItem {
	return m.items
}

// TotalWeight returns the summed weight demand in kilograms.
func (m Manifest) TotalWeight() int {
	total := 0
	for _, item := range m.items {
		total += item.Weight()
	}
	return total
}

// TotalVolume returns the summed volume demand in litres.
func (m Manifest) TotalVolume() int {
	total := 0
	for _, item := range m.items {
		total += item.Volume()
	}
	return total
}
