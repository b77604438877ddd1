package order

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDispatcherAlreadyAssigned is returned when attempting to bind a
	// dispatcher to an order that already has one.
	ErrDispatcherAlreadyAssigned = errors.New("order already has a dispatcher assigned")

	// ErrPaymentFailedOrder is returned when attempting to confirm an order
	// whose settlement callback reported failure.
	ErrPaymentFailedOrder = errors.New("order with failed payment cannot be confirmed")
)

// Order represents a buyer's purchase spanning one farmer's products.
// It is the aggregate root that owns the order lifecycle from checkout through
// dispatcher assignment to delivery or cancellation.
//
// Order maintains these invariants:
//   - valid buyer, farmer and (once assigned) dispatcher identifiers
//   - at least one line item; totalAmount equals the sum of line totals
//   - farmerAmount + dispatcherAmount <= totalAmount; the remainder is the
//     platform fee
//   - status transitions follow the Status state machine
//   - payment status is recorded independently, except that a failed payment
//     blocks confirmation
//
// Orders are never deleted, only status-terminated.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the purchasing user
	buyerID kernel.UUID

	// farmerID identifies the selling farmer
	farmerID kernel.UUID

	// dispatcherID is the assigned dispatcher (nil until assignment)
	dispatcherID *kernel.UUID

	// items are the purchased lines with snapshotted prices
	items []Item

	// totalAmount is the sum of all line totals
	totalAmount kernel.Money

	// farmerAmount is the farmer's share of the total
	farmerAmount kernel.Money

	// dispatcherAmount is the dispatcher's delivery fee share
	dispatcherAmount kernel.Money

	// pickupAddress is the human-readable farm address goods are collected from
	pickupAddress string

	// pickupPoint is the farm coordinates
	pickupPoint kernel.GeoPoint

	// deliveryAddress is the human-readable drop-off address
	deliveryAddress string

	// deliveryPoint is the drop-off coordinates
	deliveryPoint kernel.GeoPoint

	// paymentMethod is how the buyer settles the order
	paymentMethod PaymentMethod

	// paymentStatus tracks settlement, orthogonal to the order status
	paymentStatus PaymentStatus

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order at checkout. The order starts in Pending status
// with payment Pending and no dispatcher.
//
// The amount split must satisfy farmerAmount + dispatcherAmount <= totalAmount,
// and totalAmount must equal the sum of the line item totals. The remainder of
// the split is the platform fee and is not stored separately.
func NewOrder(
	id, buyerID, farmerID kernel.UUID,
	items []Item,
	totalAmount, farmerAmount, dispatcherAmount kernel.Money,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	paymentMethod PaymentMethod,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setFarmerID(farmerID),
		order.setItems(items),
		order.setAmounts(totalAmount, farmerAmount, dispatcherAmount),
		order.setPickupAddress(pickupAddress),
		order.setPickupPoint(pickupPoint),
		order.setDeliveryAddress(deliveryAddress),
		order.setDeliveryPoint(deliveryPoint),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status, payment state and dispatcher assignment. It applies the same field
// validation as NewOrder but accepts any valid lifecycle state.
func RestoreOrder(
	id, buyerID, farmerID kernel.UUID,
	dispatcherID *kernel.UUID,
	items []Item,
	totalAmount, farmerAmount, dispatcherAmount kernel.Money,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, buyerID, farmerID, items,
		totalAmount, farmerAmount, dispatcherAmount,
		pickupAddress, pickupPoint,
		deliveryAddress, deliveryPoint, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	if dispatcherID != nil {
		if err = dispatcherID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *dispatcherID
		order.dispatcherID = &idCopy
	}

	order.status = status
	order.paymentStatus = paymentStatus
	return order, nil
}

// Validate ensures the Order was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Call when reconstructing orders
// from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// FarmerID returns the selling farmer's identifier.
func (o *Order) FarmerID() kernel.UUID {
	return o.farmerID
}

// Dispatcher returns the assigned dispatcher's identifier, or nil.
func (o *Order) Dispatcher() *kernel.UUID {
	return o.dispatcherID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// FarmerAmount returns the farmer's share of the total.
func (o *Order) FarmerAmount() kernel.Money {
	return o.farmerAmount
}

// DispatcherAmount returns the dispatcher's delivery fee share.
func (o *Order) DispatcherAmount() kernel.Money {
	return o.dispatcherAmount
}

// PlatformFee returns the remainder of the total after the farmer and
// dispatcher shares.
func (o *Order) PlatformFee() kernel.Money {
	fee, _ := o.totalAmount.Sub(o.farmerAmount.Add(o.dispatcherAmount))
	return fee
}

// PickupAddress returns the human-readable farm address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// PickupPoint returns the farm coordinates.
func (o *Order) PickupPoint() kernel.GeoPoint {
	return o.pickupPoint
}

// DeliveryAddress returns the human-readable drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPoint returns the drop-off coordinates.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// PaymentMethod returns how the buyer settles the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignDispatcher binds a dispatcher to the order.
//
// Business rules:
//   - the order must be in Confirmed status (assignment happens once the
//     farmer accepts and before preparation starts)
//   - the order must not already have a dispatcher
//
// Assignment does not advance the order status; the farmer drives the
// Confirmed -> Preparing transition independently.
func (o *Order) AssignDispatcher(dispatcherID kernel.UUID) error {
	if err := dispatcherID.Validate(); err != nil {
		return err
	}

	if o.status != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("dispatcher can only be assigned to a confirmed order, not %s", o.status))
	}

	if o.dispatcherID != nil {
		return ErrDispatcherAlreadyAssigned
	}

	o.dispatcherID = &dispatcherID
	return nil
}

// ChangeStatus advances the order to the requested status.
//
// On top of the Status state machine it enforces two cross-field rules:
//   - Confirmed is refused while the payment status is failed
//   - InTransit requires a dispatcher to be assigned
//
// Returns an InvalidTransition error for illegal requests; the order is left
// unmodified on any failure.
func (o *Order) ChangeStatus(next Status) error {
	if next == Confirmed && o.paymentStatus == PaymentStatusFailed {
		return ErrPaymentFailedOrder
	}
	if next == InTransit && o.dispatcherID == nil {
		return errs.NewValueIsRequiredError("dispatcher")
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RecordPayment records the settlement outcome reported by a payment callback.
// Only the Paid and Failed outcomes can be recorded; the order status is not
// affected.
func (o *Order) RecordPayment(status PaymentStatus) error {
	if status != PaymentStatusPaid && status != PaymentStatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s cannot be recorded by a settlement callback", status))
	}

	o.paymentStatus = status
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the buyer identifier.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

// setFarmerID validates and sets the farmer identifier.
func (o *Order) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	o.farmerID = farmerID
	return nil
}

// setItems validates the line items and stores a defensive copy.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setAmounts validates the amount split invariants and stores the amounts.
func (o *Order) setAmounts(total, farmer, dispatcher kernel.Money) error {
	var itemSum kernel.Money
	for _, item := range o.items {
		lineTotal, err := item.Total()
		if err != nil {
			return err
		}
		itemSum = itemSum.Add(lineTotal)
	}

	if !total.IsEqual(itemSum) {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("total %s does not match item sum %s", total, itemSum))
	}

	if farmer.Add(dispatcher).Cents() > total.Cents() {
		return errs.NewValueIsInvalidErrorWithCause("amounts",
			fmt.Errorf("farmer %s + dispatcher %s exceeds total %s", farmer, dispatcher, total))
	}

	o.totalAmount = total
	o.farmerAmount = farmer
	o.dispatcherAmount = dispatcher
	return nil
}

// setPickupAddress validates and sets the farm address.
func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

// setPickupPoint validates and sets the farm coordinates.
func (o *Order) setPickupPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.pickupPoint = point
	return nil
}

// setDeliveryAddress validates and sets the drop-off address.
func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

// setDeliveryPoint validates and sets the drop-off coordinates.
func (o *Order) setDeliveryPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.deliveryPoint = point
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
