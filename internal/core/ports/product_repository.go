package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product listings.
type ProductRepository interface {
	// Add persists a new product listing to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product listing.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product listing by its unique identifier.
	// Returns errs.ObjectNotFoundError when no listing exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllAvailable retrieves active listings with stock, newest first.
	GetAllAvailable(ctx context.Context) ([]*product.Product, error)
}
