package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatcherWorkloadsQueryHandler retrieves dispatcher workload counts from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetDispatcherWorkloadsQueryHandler(db)
//	query := NewGetDispatcherWorkloadsQuery()
//
//	workloads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get workloads: %v", err)
//	    return err
//	}
type GetDispatcherWorkloadsQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatcherWorkloadsQueryHandler creates a handler for workload queries.
// Requires a GORM database connection for query execution.
func NewGetDispatcherWorkloadsQueryHandler(db *gorm.DB) GetDispatcherWorkloadsQueryHandler {
	return GetDispatcherWorkloadsQueryHandler{db: db}
}

// Handle executes the query to retrieve workloads for all active dispatchers.
// Dispatchers with no deliveries appear with zero counts. Results are sorted
// by dispatcher ID for deterministic output.
func (h GetDispatcherWorkloadsQueryHandler) Handle(
	ctx context.Context,
	query GetDispatcherWorkloadsQuery,
) ([]GetDispatcherWorkloadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workloads := make([]GetDispatcherWorkloadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			COUNT(CASE WHEN dl.status <> ? THEN 1 END) AS pending_orders,
			COUNT(dl.id) AS total_orders
		FROM dispatchers d
		LEFT JOIN deliveries dl ON dl.dispatcher_id = d.id
		WHERE d.active = true
		GROUP BY d.id, d.name
		ORDER BY d.id
	`, delivery.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workload GetDispatcherWorkloadsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&workload.Name,
			&workload.PendingOrders,
			&workload.TotalOrders,
		)
		if err != nil {
			return nil, err
		}

		dispatcherID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workload.DispatcherID = dispatcherID
		workloads = append(workloads, workload)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workloads, nil
}
