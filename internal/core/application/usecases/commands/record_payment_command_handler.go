package commands

import (
	"context"
	"fmt"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
)

// RecordPaymentCommandHandler handles settlement callbacks from the payment
// provider. Payment state is recorded on the order without touching its
// lifecycle status; a failed payment only surfaces later by blocking
// confirmation.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewRecordPaymentCommandHandler creates a handler for settlement callbacks.
func NewRecordPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the settlement callback.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err = ord.RecordPayment(cmd.Outcome()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	title := "Payment received"
	if cmd.Outcome() == order.PaymentStatusFailed {
		title = "Payment failed"
	}

	// Best effort after commit.
	_ = h.publisher.Publish(ctx, ord.BuyerID().String(), ports.Notification{
		Title: title,
		Body:  fmt.Sprintf("Payment for your order of %s is %s.", ord.TotalAmount(), cmd.Outcome()),
		Tag:   "order-" + ord.ID().String(),
		URL:   "/orders/" + ord.ID().String(),
		Metadata: map[string]string{
			"orderId":       ord.ID().String(),
			"paymentStatus": cmd.Outcome().String(),
		},
	})

	return nil
}
