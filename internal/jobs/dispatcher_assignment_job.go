package jobs

import (
	"context"
	"errors"
	"log/slog"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DispatcherAssignmentJob periodically assigns dispatchers to confirmed
// orders that are still waiting for one. Orders confirmed between runs are
// picked up on the next tick.
type DispatcherAssignmentJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.AssignDispatcherCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDispatcherAssignmentJob creates a new job for automatic dispatcher assignment.
// The schedule is a six-field cron expression with seconds resolution.
func NewDispatcherAssignmentJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.AssignDispatcherCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatcherAssignmentJob {
	return &DispatcherAssignmentJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dispatcher_assignment_job"),
	}
}

// Start begins the dispatcher assignment job on its schedule.
func (j *DispatcherAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatcher assignment job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the dispatcher assignment job.
func (j *DispatcherAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatcher assignment job stopped")
}

// run assigns a dispatcher to every order awaiting one. Each order is
// processed in its own transaction so one failure does not block the rest.
func (j *DispatcherAssignmentJob) run(ctx context.Context) {
	orders, err := j.awaitingOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list orders awaiting assignment", "error", err)
		return
	}

	for _, awaiting := range orders {
		cmd, cmdErr := commands.NewAssignDispatcherCommand(awaiting.ID())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"orderId", awaiting.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// No dispatchers available is an expected outcome, not a failure.
			if errors.Is(handleErr, services.ErrNoDispatcherAvailable) {
				continue
			}
			j.logger.ErrorContext(ctx, "Dispatcher assignment failed",
				"orderId", awaiting.ID().String(), "error", handleErr)
		}
	}
}

func (j *DispatcherAssignmentJob) awaitingOrders(ctx context.Context) ([]*order.Order, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.OrderRepository().GetAllConfirmedWithoutDispatcher(ctx)
}
