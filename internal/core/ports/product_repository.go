package ports

import (
	"context"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product reference
// data. Manifest items carry product ids; handlers resolve them here before
// building the domain manifest.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError when no product has the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers. Missing
	// ids surface as errs.ObjectNotFoundError so manifest resolution fails
	// loudly instead of silently shrinking the cargo.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
