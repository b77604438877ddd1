package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles delivery progress reports.
// The delivery state machine is checked against the parent order's current
// status, so a delivery can never report a milestone the order has not
// reached yet.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	publisher  ports.NotificationPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	publisher ports.NotificationPublisher,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery status update command.
// Loads the delivery and its parent order, applies the transition and
// persists the delivery. The order itself is not modified here.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	del, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, del.OrderID())
	if err != nil {
		return err
	}

	if err = del.ChangeStatus(cmd.Next(), ord.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, del); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort after commit.
	_ = h.publisher.Publish(ctx, ord.BuyerID().String(), ports.Notification{
		Title: "Delivery update",
		Body:  fmt.Sprintf("Your delivery is now %s.", del.Status()),
		Tag:   "order-" + ord.ID().String(),
		URL:   "/orders/" + ord.ID().String(),
		Metadata: map[string]string{
			"orderId":    ord.ID().String(),
			"deliveryId": del.ID().String(),
			"status":     del.Status().String(),
		},
	})

	return nil
}
