package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
// The aggregate enforces the state machine; the handler only persists the
// result and notifies the buyer after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Illegal transitions surface as errs.InvalidTransitionError from the
// aggregate and roll the transaction back.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = ord.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort after commit.
	_ = h.publisher.Publish(ctx, ord.BuyerID().String(), ports.Notification{
		Title: "Order update",
		Body:  fmt.Sprintf("Your order is now %s.", ord.Status()),
		Tag:   "order-" + ord.ID().String(),
		URL:   "/orders/" + ord.ID().String(),
		Metadata: map[string]string{
			"orderId": ord.ID().String(),
			"status":  ord.Status().String(),
		},
	})

	return nil
}
