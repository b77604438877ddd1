// Package productrepo provides data transfer objects and mapping functions
// for product listing persistence.
package productrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product listings.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID       uuid.UUID `gorm:"type:uuid;index"`
	Name           string    `gorm:"not null"`
	Category       string    `gorm:"index;not null"`
	UnitPriceCents int64     `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	Unit           string    `gorm:"not null"`
	Active         bool      `gorm:"index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		FarmerID:       aggregate.FarmerID().Bytes(),
		Name:           aggregate.Name(),
		Category:       aggregate.Category().String(),
		UnitPriceCents: aggregate.UnitPrice().Cents(),
		Quantity:       aggregate.Quantity(),
		Unit:           aggregate.Unit(),
		Active:         aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, farmerID, dto.Name, category, unitPrice,
		dto.Quantity, dto.Unit, dto.Active)
}
