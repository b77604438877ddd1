package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableProductsQueryHandler retrieves the purchasable catalog from the
// database. A listing is purchasable when it is active and has stock left.
type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all available listings.
// Returns listings sorted by name for consistent output.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]GetAvailableProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings := make([]GetAvailableProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			name,
			category,
			unit_price_cents,
			quantity,
			unit
		FROM products
		WHERE active = true AND quantity > 0
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableProductsQueryResponse
		var id, farmerID uuid.UUID
		var category string
		var priceCents int64

		err = rows.Scan(
			&id,
			&farmerID,
			&resp.Name,
			&category,
			&priceCents,
			&resp.Quantity,
			&resp.Unit,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}
		if resp.Category, err = product.CategoryFromString(category); err != nil {
			return nil, err
		}
		if resp.UnitPrice, err = kernel.NewMoney(priceCents); err != nil {
			return nil, err
		}

		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
