package order_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackBDeadline(t *testing.T) *time.Time {
	t.Helper()
	d := time.Now().Add(48 * time.Hour)
	return &d
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_paid_on_track_a", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackA, kernel.Money{}, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatePaid, o.State())
		assert.Equal(t, order.TrackA, o.Track())
		assert.Nil(t, o.Deadline())
		assert.False(t, o.IsTerminal())
	})

	t.Run("track_b_requires_deadline", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.TrackB, kernel.Money{}, nil)

		require.ErrorIs(t, err, order.ErrDeadlineIsRequired)
	})

	t.Run("invalid_id_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.NewOrder(zero, order.TrackA, kernel.Money{}, nil)

		require.Error(t, err)
	})

	t.Run("invalid_track_rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Track("X"), kernel.Money{}, nil)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("valid_transition_mutates_state", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackA, kernel.Money{}, nil)
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(order.StateMeasurementPending))
		assert.Equal(t, order.StateMeasurementPending, o.State())
	})

	t.Run("invalid_transition_rejected_and_state_unchanged", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackA, kernel.Money{}, nil)
		require.NoError(t, err)

		err = o.TransitionTo(order.StateShipped)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatePaid, o.State())

		var invalidErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, order.StatePaid, invalidErr.From)
		assert.Equal(t, order.StateShipped, invalidErr.To)
		assert.Equal(t, []order.State{order.StateMeasurementPending}, invalidErr.ValidOptions)
	})

	t.Run("track_b_rejects_track_a_states_at_branch", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.TrackB, order.StateQCPassed,
			kernel.Money{}, trackBDeadline(t), 0)
		require.NoError(t, err)

		err = o.TransitionTo(order.StateShipped)
		require.ErrorIs(t, err, order.ErrUnknownState)

		require.NoError(t, o.TransitionTo(order.StateFlightManifest))
		assert.Equal(t, order.StateFlightManifest, o.State())
	})

	t.Run("terminal_state_locks_the_order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.TrackB, order.StateDeliveredHub,
			kernel.Money{}, trackBDeadline(t), 0)
		require.NoError(t, err)

		err = o.TransitionTo(order.StateFlightManifest)

		require.ErrorIs(t, err, order.ErrTerminalStateViolation)
		assert.Equal(t, order.StateDeliveredHub, o.State())
		assert.True(t, o.IsTerminal())
	})

	t.Run("unknown_target_is_a_hard_error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackA, kernel.Money{}, nil)
		require.NoError(t, err)

		require.ErrorIs(t, o.TransitionTo("S99_NONSENSE"), order.ErrUnknownState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_state_and_risk", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.RestoreOrder(id, order.TrackB, order.StateInFlight,
			kernel.Money{}, trackBDeadline(t), 0.35)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.StateInFlight, o.State())
		assert.InDelta(t, 0.35, o.RiskScore(), 1e-9)
	})

	t.Run("state_off_track_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.TrackA, order.StateInFlight,
			kernel.Money{}, nil, 0)

		require.ErrorIs(t, err, order.ErrUnknownState)
	})
}

func TestOrder_RefreshRiskScore(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	newTrackB := func(deadline time.Time) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackB, kernel.Money{}, &deadline)
		require.NoError(t, err)
		return o
	}

	t.Run("far_deadline_is_zero_risk", func(t *testing.T) {
		o := newTrackB(now.Add(96 * time.Hour))

		o.RefreshRiskScore(now)

		assert.Zero(t, o.RiskScore())
	})

	t.Run("risk_ramps_as_deadline_approaches", func(t *testing.T) {
		o := newTrackB(now.Add(36 * time.Hour))

		o.RefreshRiskScore(now)

		assert.InDelta(t, 0.5, o.RiskScore(), 1e-9)
	})

	t.Run("missed_deadline_pins_risk_at_one", func(t *testing.T) {
		o := newTrackB(now.Add(-time.Hour))

		o.RefreshRiskScore(now)

		assert.Equal(t, 1.0, o.RiskScore())
	})

	t.Run("track_a_stays_at_zero", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.TrackA, kernel.Money{}, nil)
		require.NoError(t, err)

		o.RefreshRiskScore(now)

		assert.Zero(t, o.RiskScore())
	})
}
