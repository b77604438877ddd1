package queries

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
		"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
	)
)

// GetAvailableProductsQuery retrieves the marketplace catalog, that is all
// active listings with remaining stock.
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a query to retrieve available listings.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableProductsQueryIsNotConstructed if validation fails.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// GetAvailableProductsQueryResponse represents a purchasable listing in the
// read model.
type GetAvailableProductsQueryResponse struct {
	ID        kernel.UUID
	FarmerID  kernel.UUID
	Name      string
	Category  product.Category
	UnitPrice kernel.Money
	Quantity  int
	Unit      string
}
