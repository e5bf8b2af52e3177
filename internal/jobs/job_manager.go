package jobs

import (
	"fmt"
	"log/slog"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentSweepJob *AssignmentSweepJob
	riskRefreshJob     *RiskRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the assignment handler and a unit of work factory as dependencies
// to wire up the job execution.
func NewJobManager(
	assignTailorsHandler commands.AssignTailorsCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentSweepJob: NewAssignmentSweepJob(assignTailorsHandler, uowFactory, logger),
		riskRefreshJob:     NewRiskRefreshJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment sweep job: %w", err)
	}

	if err := jm.riskRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.assignmentSweepJob.Stop()
		return fmt.Errorf("failed to start risk refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.riskRefreshJob.Stop()
	jm.assignmentSweepJob.Stop()
}
