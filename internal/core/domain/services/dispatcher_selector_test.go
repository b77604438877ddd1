package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmmarket/internal/core/domain/model/kernel"
)

func TestFindBestDispatcher(t *testing.T) {
	selector := NewDispatcherSelector()

	t.Run("fewest_pending_wins_with_total_tiebreak", func(t *testing.T) {
		// Given: B and C tie on pending orders, C has fewer total
		a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		workloads := []DispatcherWorkload{
			{DispatcherID: a, PendingOrders: 3, TotalOrders: 10},
			{DispatcherID: b, PendingOrders: 1, TotalOrders: 5},
			{DispatcherID: c, PendingOrders: 1, TotalOrders: 2},
		}

		// When
		result := selector.FindBestDispatcher(workloads)

		// Then
		require.True(t, result.IsAssigned)
		assert.True(t, result.DispatcherID.IsEqual(c))
	})

	t.Run("fewest_pending_wins_outright", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		workloads := []DispatcherWorkload{
			{DispatcherID: a, PendingOrders: 2, TotalOrders: 2},
			{DispatcherID: b, PendingOrders: 0, TotalOrders: 50},
		}

		result := selector.FindBestDispatcher(workloads)

		require.True(t, result.IsAssigned)
		assert.True(t, result.DispatcherID.IsEqual(b))
	})

	t.Run("full_tie_goes_to_first_in_input", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		workloads := []DispatcherWorkload{
			{DispatcherID: a, PendingOrders: 1, TotalOrders: 4},
			{DispatcherID: b, PendingOrders: 1, TotalOrders: 4},
		}

		result := selector.FindBestDispatcher(workloads)

		require.True(t, result.IsAssigned)
		assert.True(t, result.DispatcherID.IsEqual(a))
	})

	t.Run("empty_pool_is_not_assigned", func(t *testing.T) {
		result := selector.FindBestDispatcher(nil)

		assert.False(t, result.IsAssigned)
		assert.Equal(t, ReasonNoActiveDispatchers, result.Reason)
	})

	t.Run("input_slice_is_not_modified", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()
		workloads := []DispatcherWorkload{
			{DispatcherID: a, PendingOrders: 5, TotalOrders: 9},
			{DispatcherID: b, PendingOrders: 1, TotalOrders: 1},
		}

		selector.FindBestDispatcher(workloads)

		assert.True(t, workloads[0].DispatcherID.IsEqual(a))
		assert.Equal(t, 5, workloads[0].PendingOrders)
	})

	t.Run("same_snapshot_gives_same_result", func(t *testing.T) {
		a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		workloads := []DispatcherWorkload{
			{DispatcherID: a, PendingOrders: 2, TotalOrders: 7},
			{DispatcherID: b, PendingOrders: 2, TotalOrders: 3},
			{DispatcherID: c, PendingOrders: 4, TotalOrders: 4},
		}

		first := selector.FindBestDispatcher(workloads)
		second := selector.FindBestDispatcher(workloads)

		assert.Equal(t, first, second)
	})
}

func TestPickRandomDispatcher(t *testing.T) {
	selector := NewDispatcherSelector()

	t.Run("picks_from_the_pool", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
		rng := rand.New(rand.NewSource(42))

		picked, err := selector.PickRandomDispatcher(ids, rng)

		require.NoError(t, err)
		assert.Contains(t, ids, picked)
	})

	t.Run("single_candidate_is_always_picked", func(t *testing.T) {
		only := kernel.NewUUID()
		rng := rand.New(rand.NewSource(1))

		picked, err := selector.PickRandomDispatcher([]kernel.UUID{only}, rng)

		require.NoError(t, err)
		assert.True(t, picked.IsEqual(only))
	})

	t.Run("every_candidate_is_reachable", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
		rng := rand.New(rand.NewSource(7))

		seen := make(map[kernel.UUID]bool)
		for range 200 {
			picked, err := selector.PickRandomDispatcher(ids, rng)
			require.NoError(t, err)
			seen[picked] = true
		}

		assert.Len(t, seen, len(ids))
	})

	t.Run("empty_pool_returns_error", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		_, err := selector.PickRandomDispatcher(nil, rng)

		assert.ErrorIs(t, err, ErrNoDispatcherAvailable)
	})
}
