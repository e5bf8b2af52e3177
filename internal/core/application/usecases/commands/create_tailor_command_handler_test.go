package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTailorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tailorID := kernel.NewUUID()
	cmd, err := commands.NewCreateTailorCommand(tailorID, "Raja Singh", tailor.SkillMaster, 0.98, 0, "ZONE_A")
	require.NoError(t, err)

	tailorRepo := new(MockTailorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("Add", ctx, mock.AnythingOfType("*tailor.Tailor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTailorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Zero capacity in the command means the skill level's default.
	added := tailorRepo.Calls[0].Arguments[1].(*tailor.Tailor)
	assert.True(t, added.ID().IsEqual(tailorID))
	assert.Equal(t, 3, added.MaxConcurrentJobs())

	tailorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTailorCommandHandler_Handle_InvalidPassRate(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateTailorCommand(kernel.NewUUID(), "Raja Singh", tailor.SkillMaster, 1.3, 0, "")
	require.NoError(t, err)

	factory := new(MockTailorUoWFactory)
	handler := commands.NewCreateTailorCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateTailorCommand_Invalid(t *testing.T) {
	t.Run("empty_name", func(t *testing.T) {
		_, err := commands.NewCreateTailorCommand(kernel.NewUUID(), "", tailor.SkillJunior, 0.8, 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_skill", func(t *testing.T) {
		_, err := commands.NewCreateTailorCommand(kernel.NewUUID(), "X", tailor.SkillLevel("wizard"), 0.8, 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateTailorCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateTailorCommandIsNotConstructed)
	})
}
