package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/services"
)

// DispatcherRepository defines the persistence contract for dispatcher aggregates.
type DispatcherRepository interface {
	// Add persists a new dispatcher aggregate to storage.
	Add(ctx context.Context, aggregate *dispatcher.Dispatcher) error

	// Update persists changes to an existing dispatcher aggregate.
	Update(ctx context.Context, aggregate *dispatcher.Dispatcher) error

	// Get retrieves a dispatcher aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no dispatcher exists with the ID.
	Get(ctx context.Context, id kernel.UUID) (*dispatcher.Dispatcher, error)

	// GetAllActiveIDs retrieves the identifiers of every dispatcher currently
	// available for assignment. Used by the random fallback when workload
	// data cannot be computed.
	GetAllActiveIDs(ctx context.Context) ([]kernel.UUID, error)

	// GetWorkloads computes the current workload snapshot for every active
	// dispatcher. Dispatchers without deliveries appear with zero counts.
	GetWorkloads(ctx context.Context) ([]services.DispatcherWorkload, error)
}
