package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryCompletionJob *DeliveryCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dueHandler queries.GetDueDeliveriesQueryHandler,
	advanceHandler commands.AdvanceOrderStatusCommandHandler,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryCompletionJob: NewDeliveryCompletionJob(dueHandler, advanceHandler, orderMetrics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryCompletionJob.Stop()
}
