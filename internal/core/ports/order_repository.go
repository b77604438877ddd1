// Package ports defines the contracts between the application core and
// infrastructure adapters. Repositories persist aggregates, the unit of work
// scopes them to a transaction, and the notification publisher pushes events
// out to users.
package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves orders that are neither delivered nor cancelled,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllConfirmedWithoutDispatcher retrieves confirmed orders that still
	// need a dispatcher, oldest first. Used by the automatic assignment job.
	GetAllConfirmedWithoutDispatcher(ctx context.Context) ([]*order.Order, error)
}
