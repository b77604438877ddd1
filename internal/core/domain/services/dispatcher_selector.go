package services

import (
	"errors"
	"math/rand"
	"sort"

	"farmmarket/internal/core/domain/model/kernel"
)

// ErrNoDispatcherAvailable is returned when no dispatcher can be picked.
// This occurs when the candidate pool is empty, either because no dispatchers
// are registered or because none are currently active.
var ErrNoDispatcherAvailable = errors.New("no dispatcher available")

// ReasonNoActiveDispatchers explains an unassigned result caused by an empty
// candidate pool.
const ReasonNoActiveDispatchers = "no active dispatchers available"

// DispatcherWorkload is a read-only snapshot of one dispatcher's current load.
// PendingOrders counts deliveries still in progress, TotalOrders counts every
// delivery ever assigned to the dispatcher.
type DispatcherWorkload struct {
	DispatcherID  kernel.UUID
	PendingOrders int
	TotalOrders   int
}

// AssignmentResult is the outcome of a selection attempt. When IsAssigned is
// false, DispatcherID is the zero UUID and Reason explains why no dispatcher
// was picked.
type AssignmentResult struct {
	IsAssigned   bool
	DispatcherID kernel.UUID
	Reason       string
}

// DispatcherSelector is a domain service that picks the best dispatcher for a
// new order from a workload snapshot.
//
// Selection rules:
//   - fewest pending orders wins
//   - ties are broken by fewest total orders, favoring newer dispatchers
//   - a full tie goes to whichever candidate appeared first in the input
//   - an empty pool yields an unassigned result, not an error
//
// The selector never mutates its input and holds no state, so the same
// snapshot always produces the same result.
//
// Example usage:
//
//	selector := NewDispatcherSelector()
//	result := selector.FindBestDispatcher(workloads)
//	if !result.IsAssigned {
//	    // result.Reason explains why
//	    return
//	}
//	// assign the order to result.DispatcherID
type DispatcherSelector struct{}

// NewDispatcherSelector creates a new DispatcherSelector instance.
func NewDispatcherSelector() DispatcherSelector {
	return DispatcherSelector{}
}

// FindBestDispatcher picks the least-loaded dispatcher from the snapshot.
// The input slice is not modified.
func (s DispatcherSelector) FindBestDispatcher(workloads []DispatcherWorkload) AssignmentResult {
	if len(workloads) == 0 {
		return AssignmentResult{
			IsAssigned: false,
			Reason:     ReasonNoActiveDispatchers,
		}
	}

	candidates := make([]DispatcherWorkload, len(workloads))
	copy(candidates, workloads)

	// Stable sort keeps input order on full ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].PendingOrders != candidates[j].PendingOrders {
			return candidates[i].PendingOrders < candidates[j].PendingOrders
		}
		return candidates[i].TotalOrders < candidates[j].TotalOrders
	})

	return AssignmentResult{
		IsAssigned:   true,
		DispatcherID: candidates[0].DispatcherID,
	}
}

// PickRandomDispatcher picks a dispatcher uniformly at random from the given
// identifiers. It is the fallback used when workload data cannot be computed.
// Returns ErrNoDispatcherAvailable when the pool is empty.
func (s DispatcherSelector) PickRandomDispatcher(
	ids []kernel.UUID, rng *rand.Rand,
) (kernel.UUID, error) {
	if len(ids) == 0 {
		return kernel.UUID{}, ErrNoDispatcherAvailable
	}

	return ids[rng.Intn(len(ids))], nil
}
