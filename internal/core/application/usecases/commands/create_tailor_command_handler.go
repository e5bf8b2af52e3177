package commands

import (
	"context"

	"atelier/internal/core/domain/model/tailor"
)

// CreateTailorCommandHandler handles the business logic for tailor onboarding.
type CreateTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewCreateTailorCommandHandler creates a handler for tailor onboarding operations.
// Requires a TailorUoWFactory for transactional persistence.
func NewCreateTailorCommandHandler(uowFactory TailorUoWFactory) CreateTailorCommandHandler {
	return CreateTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor onboarding command.
// Builds the aggregate (applying the skill level's default capacity when none
// was requested) and persists it in one transaction.
func (h CreateTailorCommandHandler) Handle(ctx context.Context, cmd CreateTailorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newTailor, err := tailor.NewTailor(
		cmd.TailorID(), cmd.Name(), cmd.SkillLevel(), cmd.QCPassRate(), cmd.MaxConcurrentJobs(), cmd.Zone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TailorRepository().Add(ctx, newTailor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
