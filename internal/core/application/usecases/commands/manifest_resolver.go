package commands

import (
	"context"

	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"
	"couriermanagement/internal/core/domain/model/route"
	"couriermanagement/internal/core/ports"
)

// resolveManifest loads the products referenced by the request items and
// builds the domain manifest. A missing product surfaces as the repository's
// not-found error.
func resolveManifest(
	ctx context.Context,
	repo ports.ProductRepository,
	items []ManifestItemRequest,
) (route.Manifest, error) {
	seen := make(map[kernel.UUID]bool)
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	loaded, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return route.Manifest{}, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(loaded))
	for _, p := range loaded {
		byID[p.ID()] = p
	}

	lines := make([]route.ManifestItem, 0, len(items))
	for _, item := range items {
		line, err := route.NewManifestItem(byID[item.ProductID], item.Quantity)
		if err != nil {
			return route.Manifest{}, err
		}
		lines = append(lines, line)
	}

	return route.NewManifest(lines)
}
