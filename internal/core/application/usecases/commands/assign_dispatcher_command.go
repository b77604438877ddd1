package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrAssignDispatcherCommandIsNotConstructed = errors.New(
	"AssignDispatcherCommand must be created via NewAssignDispatcherCommand constructor",
)

// AssignDispatcherCommand represents a request to pick a dispatcher for a
// confirmed order and open a delivery for it.
type AssignDispatcherCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDispatcherCommand creates a command to assign a dispatcher to the
// given order.
func NewAssignDispatcherCommand(orderID kernel.UUID) (AssignDispatcherCommand, error) {
	cmd := AssignDispatcherCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignDispatcherCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDispatcherCommand) Validate() error {
	return c.guard.Validate(ErrAssignDispatcherCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDispatcherCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignDispatcherCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
