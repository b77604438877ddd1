package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is one requested product and quantity at checkout.
// Prices are not part of the request; they are snapshotted from the listing
// when the order is created.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a buyer's checkout request: which products to
// buy, where to deliver them, and how the buyer intends to pay.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, farmerID,
//	    lines, "5 Farm Lane, Magaliesburg", pickup,
//	    "12 Main Road, Soweto", dropoff, order.PaymentMethodCash)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	buyerID         kernel.UUID
	farmerID        kernel.UUID
	lines           []OrderLine
	pickupAddress   string
	pickupPoint     kernel.GeoPoint
	deliveryAddress string
	deliveryPoint   kernel.GeoPoint
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, lines, addresses, coordinates and payment method.
func NewCreateOrderCommand(
	orderID, buyerID, farmerID kernel.UUID,
	lines []OrderLine,
	pickupAddress string, pickupPoint kernel.GeoPoint,
	deliveryAddress string, deliveryPoint kernel.GeoPoint,
	paymentMethod order.PaymentMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setFarmerID(farmerID),
		cmd.setLines(lines),
		cmd.setPickup(pickupAddress, pickupPoint),
		cmd.setDelivery(deliveryAddress, deliveryPoint),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the purchasing user's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// FarmerID returns the selling farmer's identifier.
func (c CreateOrderCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// Lines returns a copy of the requested product lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// PickupAddress returns the farm address goods are collected from.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// PickupPoint returns the farm coordinates.
func (c CreateOrderCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPoint returns the drop-off coordinates.
func (c CreateOrderCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// PaymentMethod returns how the buyer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	c.farmerID = farmerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setPickup(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.pickupAddress = address
	c.pickupPoint = point
	return nil
}

func (c *CreateOrderCommand) setDelivery(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.deliveryAddress = address
	c.deliveryPoint = point
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
