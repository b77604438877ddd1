// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrGetDispatcherWorkloadsQueryIsNotConstructed = errors.New(
		"GetDispatcherWorkloadsQuery must be created via NewGetDispatcherWorkloadsQuery constructor",
	)
)

// GetDispatcherWorkloadsQuery retrieves the current workload of every active
// dispatcher. The counts feed the assignment heuristic and the operations
// dashboard.
//
// Example:
//
//	query := NewGetDispatcherWorkloadsQuery()
//	handler := NewGetDispatcherWorkloadsQueryHandler(db)
//
//	workloads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve workloads: %w", err)
//	}
//
//	for _, w := range workloads {
//	    fmt.Printf("%s: %d pending of %d total\n", w.Name, w.PendingOrders, w.TotalOrders)
//	}
type GetDispatcherWorkloadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDispatcherWorkloadsQuery creates a query to retrieve dispatcher workloads.
// This is a parameterless query that covers all active dispatchers.
func NewGetDispatcherWorkloadsQuery() GetDispatcherWorkloadsQuery {
	return GetDispatcherWorkloadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDispatcherWorkloadsQueryIsNotConstructed if validation fails.
func (q GetDispatcherWorkloadsQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatcherWorkloadsQueryIsNotConstructed)
}

// GetDispatcherWorkloadsQueryResponse represents one dispatcher's workload in
// the read model. PendingOrders counts deliveries that have not yet reached the
// delivered state, TotalOrders counts every delivery ever assigned.
type GetDispatcherWorkloadsQueryResponse struct {
	DispatcherID  kernel.UUID
	Name          string
	PendingOrders int
	TotalOrders   int
}
