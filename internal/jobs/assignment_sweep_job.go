package jobs

import (
	"context"
	"errors"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AssignmentSweepJob manages the scheduled assignment of tailor pairs.
// Runs every ten seconds to pair orders whose items are still unassigned,
// picking up work that arrived between API-driven assignments.
type AssignmentSweepJob struct {
	handler    commands.AssignTailorsCommandHandler
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAssignmentSweepJob creates a new job for sweeping unassigned items.
// Uses AssignTailorsCommandHandler to commit one pair per pending item.
func NewAssignmentSweepJob(
	handler commands.AssignTailorsCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *AssignmentSweepJob {
	return &AssignmentSweepJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "assignment_sweep_job"),
	}
}

// Start begins the assignment sweep job to run every ten seconds.
func (j *AssignmentSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Assignment sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment sweep job started (running every ten seconds)")
	return nil
}

// Stop stops the assignment sweep job.
func (j *AssignmentSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment sweep job stopped")
}

// sweep gathers the unassigned backlog and runs one assignment per item.
func (j *AssignmentSweepJob) sweep(ctx context.Context) error {
	items, err := j.uowFactory.Create().ItemRepository().GetAllUnassigned(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		cmd, cmdErr := commands.NewAssignTailorsCommand(item.ID(), "")
		if cmdErr != nil {
			return cmdErr
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Expected contention outcomes resolve themselves on a later tick
			if errors.Is(handleErr, services.ErrNotEnoughTailors) ||
				errors.Is(handleErr, order.ErrTailorsAlreadyAssigned) ||
				errors.Is(handleErr, tailor.ErrNoSpareCapacity) {
				continue
			}
			j.logger.ErrorContext(ctx, "Sweep assignment failed",
				"order_item_id", item.ID().String(), "error", handleErr)
		}
	}

	return nil
}
