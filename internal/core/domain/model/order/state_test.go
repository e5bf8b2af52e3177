package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidNextStates(t *testing.T) {
	t.Run("shared_spine_is_identical_on_both_tracks", func(t *testing.T) {
		for _, track := range []order.Track{order.TrackA, order.TrackB} {
			next, err := order.ValidNextStates(order.StatePaid, track)

			require.NoError(t, err)
			assert.Equal(t, []order.State{order.StateMeasurementPending}, next)
		}
	})

	t.Run("branch_point_is_track_aware", func(t *testing.T) {
		nextA, err := order.ValidNextStates(order.StateQCPassed, order.TrackA)
		require.NoError(t, err)
		assert.Equal(t, []order.State{order.StateShipped}, nextA)

		nextB, err := order.ValidNextStates(order.StateQCPassed, order.TrackB)
		require.NoError(t, err)
		assert.Equal(t, []order.State{order.StateFlightManifest}, nextB)
	})

	t.Run("rework_loops_exist", func(t *testing.T) {
		next, err := order.ValidNextStates(order.StateQCFailed, order.TrackB)
		require.NoError(t, err)
		assert.Equal(t, []order.State{order.StateStitchingInProgress}, next)

		next, err = order.ValidNextStates(order.StatePrintRejected, order.TrackA)
		require.NoError(t, err)
		assert.Equal(t, []order.State{order.StateSentToPrinter}, next)
	})

	t.Run("tracks_do_not_leak_into_each_other", func(t *testing.T) {
		_, err := order.ValidNextStates(order.StateFlightManifest, order.TrackA)
		require.ErrorIs(t, err, order.ErrUnknownState)

		_, err = order.ValidNextStates(order.StateShipped, order.TrackB)
		require.ErrorIs(t, err, order.ErrUnknownState)
	})

	t.Run("unknown_code_is_a_hard_error", func(t *testing.T) {
		_, err := order.ValidNextStates("S99_NONSENSE", order.TrackA)

		require.ErrorIs(t, err, order.ErrUnknownState)

		var unknownErr *order.UnknownStateError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, order.State("S99_NONSENSE"), unknownErr.State)
	})

	t.Run("invalid_track_rejected", func(t *testing.T) {
		_, err := order.ValidNextStates(order.StatePaid, order.Track("C"))

		require.Error(t, err)
	})
}

// The registry must be a sound transition graph: no self-loops, every edge
// target present as a key on the same track, and exactly one terminal state
// (with an empty edge set) per track.
func TestRegistrySoundness(t *testing.T) {
	for _, track := range []order.Track{order.TrackA, order.TrackB} {
		t.Run("track_"+track.String(), func(t *testing.T) {
			terminals := 0
			for _, state := range order.AllStates(track) {
				next, err := order.ValidNextStates(state, track)
				require.NoError(t, err)

				if len(next) == 0 {
					terminals++
					terminal, err := order.IsTerminal(state, track)
					require.NoError(t, err)
					assert.True(t, terminal)
				}

				for _, target := range next {
					assert.NotEqual(t, state, target, "self-loop at %s", state)

					_, err := order.ValidNextStates(target, track)
					require.NoError(t, err, "edge %s -> %s leaves track %s", state, target, track)
				}
			}

			assert.Equal(t, 1, terminals, "track %s must have exactly one terminal state", track)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Run("terminal_per_track", func(t *testing.T) {
		terminal, err := order.IsTerminal(order.StateComplete, order.TrackA)
		require.NoError(t, err)
		assert.True(t, terminal)

		terminal, err = order.IsTerminal(order.StateDeliveredHub, order.TrackB)
		require.NoError(t, err)
		assert.True(t, terminal)
	})

	t.Run("non_terminal", func(t *testing.T) {
		terminal, err := order.IsTerminal(order.StateQCPassed, order.TrackA)
		require.NoError(t, err)
		assert.False(t, terminal)
	})

	t.Run("unknown_state_never_treated_as_terminal", func(t *testing.T) {
		_, err := order.IsTerminal("S99_NONSENSE", order.TrackB)
		require.ErrorIs(t, err, order.ErrUnknownState)
	})
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, "QC Passed", order.StateQCPassed.Label())
	assert.Equal(t, "Delivered (UAE)", order.StateDeliveredHub.Label())
	assert.Equal(t, "S99_NONSENSE", order.State("S99_NONSENSE").Label())
}

func TestTerminalState(t *testing.T) {
	assert.Equal(t, order.StateComplete, order.TerminalState(order.TrackA))
	assert.Equal(t, order.StateDeliveredHub, order.TerminalState(order.TrackB))
}
