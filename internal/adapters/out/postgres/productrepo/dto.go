// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"couriermanagement/internal/core/domain/model/kernel"
	"couriermanagement/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Weight int
	Volume int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Weight: aggregate.Weight(),
		Volume: aggregate.Volume(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Weight, dto.Volume)
}
