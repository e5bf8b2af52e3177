package tailor_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTailor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tr, err := tailor.NewTailor(kernel.NewUUID(), "Raja Singh", tailor.SkillMaster, 0.98, 3, "ZONE_A")

		require.NoError(t, err)
		assert.Equal(t, "Raja Singh", tr.Name())
		assert.Equal(t, tailor.SkillMaster, tr.SkillLevel())
		assert.Equal(t, 3, tr.MaxConcurrentJobs())
		assert.Zero(t, tr.CurrentJobCount())
		assert.True(t, tr.IsActive())
		assert.True(t, tr.IsAvailable())
	})

	t.Run("default_capacity_follows_skill", func(t *testing.T) {
		cases := map[tailor.SkillLevel]int{
			tailor.SkillMaster: 3,
			tailor.SkillSenior: 2,
			tailor.SkillJunior: 1,
		}
		for skill, want := range cases {
			tr, err := tailor.NewTailor(kernel.NewUUID(), "X", skill, 0.9, 0, "")
			require.NoError(t, err)
			assert.Equal(t, want, tr.MaxConcurrentJobs())
		}
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		_, err := tailor.NewTailor(kernel.NewUUID(), "", tailor.SkillSenior, 0.9, 2, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_skill_rejected", func(t *testing.T) {
		_, err := tailor.NewTailor(kernel.NewUUID(), "X", tailor.SkillLevel("wizard"), 0.9, 2, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("pass_rate_out_of_range_rejected", func(t *testing.T) {
		_, err := tailor.NewTailor(kernel.NewUUID(), "X", tailor.SkillSenior, 1.2, 2, "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTailor_CapacityInvariant(t *testing.T) {
	t.Run("take_job_until_full", func(t *testing.T) {
		tr, err := tailor.NewTailor(kernel.NewUUID(), "X", tailor.SkillSenior, 0.9, 2, "")
		require.NoError(t, err)

		require.NoError(t, tr.TakeJob())
		require.NoError(t, tr.TakeJob())
		assert.Equal(t, 2, tr.CurrentJobCount())
		assert.False(t, tr.HasSpareCapacity())
		assert.False(t, tr.IsAvailable())

		require.ErrorIs(t, tr.TakeJob(), tailor.ErrNoSpareCapacity)
		assert.Equal(t, 2, tr.CurrentJobCount())
	})

	t.Run("release_job_never_goes_negative", func(t *testing.T) {
		tr, err := tailor.NewTailor(kernel.NewUUID(), "X", tailor.SkillJunior, 0.9, 1, "")
		require.NoError(t, err)

		require.ErrorIs(t, tr.ReleaseJob(), tailor.ErrNoJobsInProgress)

		require.NoError(t, tr.TakeJob())
		require.NoError(t, tr.ReleaseJob())
		assert.Zero(t, tr.CurrentJobCount())
	})

	t.Run("restore_rejects_count_over_capacity", func(t *testing.T) {
		_, err := tailor.RestoreTailor(kernel.NewUUID(), "X", tailor.SkillSenior, 0.9, 2, 3, "", true)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("restore_rejects_negative_count", func(t *testing.T) {
		_, err := tailor.RestoreTailor(kernel.NewUUID(), "X", tailor.SkillSenior, 0.9, 2, -1, "", true)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTailor_Availability(t *testing.T) {
	tr, err := tailor.RestoreTailor(kernel.NewUUID(), "X", tailor.SkillMaster, 0.97, 3, 1, "ZONE_B", true)
	require.NoError(t, err)

	assert.True(t, tr.IsAvailable())

	tr.Deactivate()
	assert.False(t, tr.IsAvailable())
	assert.True(t, tr.HasSpareCapacity())

	tr.Activate()
	assert.True(t, tr.IsAvailable())
}

func TestTailor_Validate(t *testing.T) {
	var tr tailor.Tailor

	require.ErrorIs(t, tr.Validate(), tailor.ErrTailorIsNotConstructed)
}
