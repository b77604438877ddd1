package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a settlement outcome reported by the
// payment provider's callback: the payment either went through or failed.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command recording a settlement outcome.
// Only the paid and failed outcomes are accepted; pending is the initial
// state and cannot be reported by a callback.
func NewRecordPaymentCommand(orderID kernel.UUID, outcome order.PaymentStatus) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the settlement is for.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the reported settlement outcome.
func (c RecordPaymentCommand) Outcome() order.PaymentStatus {
	return c.outcome
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}
