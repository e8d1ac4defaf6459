package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob periodically finds orders that are out for delivery
// past their estimated delivery time and advances them to the terminal
// status. Each order is advanced in its own transaction, so one failure does
// not block the rest of the batch.
type DeliveryCompletionJob struct {
	dueHandler     queries.GetDueDeliveriesQueryHandler
	advanceHandler commands.AdvanceOrderStatusCommandHandler
	orderMetrics   *metrics.OrderMetrics
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDeliveryCompletionJob creates a job that completes overdue deliveries.
func NewDeliveryCompletionJob(
	dueHandler queries.GetDueDeliveriesQueryHandler,
	advanceHandler commands.AdvanceOrderStatusCommandHandler,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		dueHandler:     dueHandler,
		advanceHandler: advanceHandler,
		orderMetrics:   orderMetrics,
		cron:           cron.New(),
		logger:         logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job, running once a minute.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every minute)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}

func (j *DeliveryCompletionJob) run() {
	ctx := context.Background()
	now := time.Now()

	query, err := queries.NewGetDueDeliveriesQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed to build query", "error", err)
		return
	}

	due, err := j.dueHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed to find due deliveries", "error", err)
		return
	}

	for _, delivery := range due {
		cmd, cmdErr := commands.NewAdvanceOrderStatusCommand(delivery.ID, now)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed to build command",
				"order_id", delivery.ID.String(), "error", cmdErr)
			continue
		}

		if _, advanceErr := j.advanceHandler.Handle(ctx, cmd); advanceErr != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed to complete delivery",
				"order_id", delivery.ID.String(), "error", advanceErr)
			continue
		}

		j.orderMetrics.DeliveryCompleted()
		j.logger.InfoContext(ctx, "Delivery completed", "order_id", delivery.ID.String())
	}
}
