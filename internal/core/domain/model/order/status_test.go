package order_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.InTransit, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "in_transit", order.InTransit.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_all_valid_names", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.InTransit, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("forward_chain_is_legal", func(t *testing.T) {
		chain := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.InTransit, order.Delivered,
		}

		for i := 0; i < len(chain)-1; i++ {
			next, err := chain[i].TransitionTo(chain[i+1])
			require.NoError(t, err, "%s -> %s", chain[i], chain[i+1])
			assert.Equal(t, chain[i+1], next)
		}
	})

	t.Run("skipping_steps_is_rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Preparing)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.Confirmed.TransitionTo(order.Delivered)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("moving_backward_is_rejected", func(t *testing.T) {
		// An order waiting for pickup cannot be pushed back to confirmed.
		_, err := order.Ready.TransitionTo(order.Confirmed)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancel_is_legal_from_every_non_terminal_state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.InTransit,
		} {
			next, err := s.TransitionTo(order.Cancelled)
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("terminal_states_accept_nothing", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, target := range []order.Status{
				order.Pending, order.Confirmed, order.Preparing,
				order.Ready, order.InTransit, order.Delivered, order.Cancelled,
			} {
				_, err := terminal.TransitionTo(target)
				require.Error(t, err, "%s -> %s", terminal, target)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("invalid_target_is_rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_ReachedAtLeast(t *testing.T) {
	t.Run("later_statuses_reach_earlier_milestones", func(t *testing.T) {
		assert.True(t, order.InTransit.ReachedAtLeast(order.Ready))
		assert.True(t, order.Delivered.ReachedAtLeast(order.Delivered))
		assert.True(t, order.Confirmed.ReachedAtLeast(order.Pending))
	})

	t.Run("earlier_statuses_do_not_reach_later_milestones", func(t *testing.T) {
		assert.False(t, order.Preparing.ReachedAtLeast(order.Ready))
		assert.False(t, order.Preparing.ReachedAtLeast(order.Delivered))
	})

	t.Run("cancelled_reaches_nothing", func(t *testing.T) {
		assert.False(t, order.Cancelled.ReachedAtLeast(order.Pending))
		assert.False(t, order.Cancelled.ReachedAtLeast(order.Delivered))
	})
}
