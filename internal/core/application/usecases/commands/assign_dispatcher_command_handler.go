package commands

import (
	"context"
	"fmt"
	"math/rand"

	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/core/ports"
)

// AssignDispatcherCommandHandler orchestrates dispatcher assignment.
// Picks the least-loaded active dispatcher for a confirmed order, binds it to
// the order and opens a delivery, all within one transaction. After the
// transaction commits the buyer is notified on a best effort basis.
//
// When the workload snapshot cannot be computed the handler falls back to a
// uniform random pick from the active dispatcher pool, so a broken reporting
// query does not stop order flow.
//
// Example:
//
//	handler := NewAssignDispatcherCommandHandler(uowFactory, publisher, rng)
//	cmd, _ := NewAssignDispatcherCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoDispatcherAvailable) {
//	    log.Println("No active dispatchers right now")
//	}
type AssignDispatcherCommandHandler struct {
	uowFactory AssignmentUoWFactory
	publisher  ports.NotificationPublisher
	rng        *rand.Rand
}

// NewAssignDispatcherCommandHandler creates a handler for dispatcher
// assignment. The rng is only used by the random fallback; pass a seeded
// instance from the composition root.
func NewAssignDispatcherCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.NotificationPublisher,
	rng *rand.Rand,
) AssignDispatcherCommandHandler {
	return AssignDispatcherCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		rng:        rng,
	}
}

// Handle processes the assignment command.
// Loads the order, picks a dispatcher from the workload snapshot, binds it
// and creates the delivery in assigned status. Returns
// services.ErrNoDispatcherAvailable when the active pool is empty.
func (h AssignDispatcherCommandHandler) Handle(ctx context.Context, cmd AssignDispatcherCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	dispatcherID, err := h.pickDispatcher(ctx, uow.DispatcherRepository())
	if err != nil {
		return err
	}

	if err = ord.AssignDispatcher(dispatcherID); err != nil {
		return err
	}

	del, err := delivery.NewDelivery(
		kernel.NewUUID(), ord.ID(), dispatcherID,
		ord.PickupAddress(), ord.PickupPoint(),
		ord.DeliveryAddress(), ord.DeliveryPoint(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, del); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort after commit. A failed notification never fails the assignment.
	_ = h.publisher.Publish(ctx, ord.BuyerID().String(), ports.Notification{
		Title: "Dispatcher assigned",
		Body:  fmt.Sprintf("A dispatcher is on the way to collect your order from %s.", ord.PickupAddress()),
		Tag:   "order-" + ord.ID().String(),
		URL:   "/orders/" + ord.ID().String(),
		Metadata: map[string]string{
			"orderId":      ord.ID().String(),
			"dispatcherId": dispatcherID.String(),
		},
	})

	return nil
}

// pickDispatcher selects a dispatcher from the workload snapshot, falling
// back to a uniform random pick when the snapshot cannot be computed.
func (h AssignDispatcherCommandHandler) pickDispatcher(
	ctx context.Context, dispatcherRepo ports.DispatcherRepository,
) (kernel.UUID, error) {
	selector := services.NewDispatcherSelector()

	workloads, err := dispatcherRepo.GetWorkloads(ctx)
	if err != nil {
		ids, idsErr := dispatcherRepo.GetAllActiveIDs(ctx)
		if idsErr != nil {
			return kernel.UUID{}, idsErr
		}

		return selector.PickRandomDispatcher(ids, h.rng)
	}

	result := selector.FindBestDispatcher(workloads)
	if !result.IsAssigned {
		return kernel.UUID{}, fmt.Errorf("%w: %s", services.ErrNoDispatcherAvailable, result.Reason)
	}

	return result.DispatcherID, nil
}
