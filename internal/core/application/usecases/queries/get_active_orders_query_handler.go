package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out terminal orders to provide active fulfillment visibility.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight orders.
// Returns orders whose status is neither delivered nor cancelled, sorted by
// order ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			farmer_id,
			dispatcher_id,
			status,
			total_amount_cents,
			delivery_address
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Delivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, buyerID, farmerID uuid.UUID
		var dispatcherID uuid.NullUUID
		var status string
		var totalCents int64

		err = rows.Scan(
			&id,
			&buyerID,
			&farmerID,
			&dispatcherID,
			&status,
			&totalCents,
			&resp.DeliveryAddress,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.FarmerID, err = kernel.UUIDFromBytes(farmerID[:]); err != nil {
			return nil, err
		}
		if dispatcherID.Valid {
			assignedID, idErr := kernel.UUIDFromBytes(dispatcherID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DispatcherID = &assignedID
		}

		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if resp.TotalAmount, err = kernel.NewMoney(totalCents); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
