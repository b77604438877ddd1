package jobs

import (
	"fmt"
	"log/slog"

	"farmmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatcherAssignmentJob *DispatcherAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	assignDispatcherHandler commands.AssignDispatcherCommandHandler,
	assignmentSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatcherAssignmentJob: NewDispatcherAssignmentJob(
			uowFactory, assignDispatcherHandler, assignmentSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatcherAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatcher assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatcherAssignmentJob.Stop()
}
