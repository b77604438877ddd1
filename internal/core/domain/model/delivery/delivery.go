package delivery

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery is the dispatcher-side fulfillment record tied to exactly one
// order. It is created when a dispatcher is bound to a confirmed order and
// tracks the physical movement of the goods from farm to buyer.
//
// Invariants:
//   - the order reference is immutable once created (no setter exists)
//   - status moves strictly forward and never ahead of the parent order
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID references the parent order; immutable after construction
	orderID kernel.UUID

	// dispatcherID identifies the dispatcher carrying out the delivery
	dispatcherID kernel.UUID

	// pickupAddress is the human-readable farm address
	pickupAddress string

	// pickupPoint is the farm coordinates
	pickupPoint kernel.GeoPoint

	// dropoffAddress is the human-readable buyer address
	dropoffAddress string

	// dropoffPoint is the buyer coordinates
	dropoffPoint kernel.GeoPoint

	// status is the current state in the delivery lifecycle
	status Status

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a Delivery in Assigned status for the given order and
// dispatcher. All identifiers, addresses and coordinates are validated.
func NewDelivery(
	id, orderID, dispatcherID kernel.UUID,
	pickupAddress string, pickupPoint kernel.GeoPoint,
	dropoffAddress string, dropoffPoint kernel.GeoPoint,
) (*Delivery, error) {
	d := &Delivery{
		status:        Assigned,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDispatcherID(dispatcherID),
		d.setPickup(pickupAddress, pickupPoint),
		d.setDropoff(dropoffAddress, dropoffPoint),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence together with its
// current status.
func RestoreDelivery(
	id, orderID, dispatcherID kernel.UUID,
	pickupAddress string, pickupPoint kernel.GeoPoint,
	dropoffAddress string, dropoffPoint kernel.GeoPoint,
	status Status,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, dispatcherID,
		pickupAddress, pickupPoint, dropoffAddress, dropoffPoint)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the parent order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DispatcherID returns the identifier of the dispatcher carrying out the delivery.
func (d *Delivery) DispatcherID() kernel.UUID {
	return d.dispatcherID
}

// PickupAddress returns the human-readable farm address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// PickupPoint returns the farm coordinates.
func (d *Delivery) PickupPoint() kernel.GeoPoint {
	return d.pickupPoint
}

// DropoffAddress returns the human-readable buyer address.
func (d *Delivery) DropoffAddress() string {
	return d.dropoffAddress
}

// DropoffPoint returns the buyer coordinates.
func (d *Delivery) DropoffPoint() kernel.GeoPoint {
	return d.dropoffPoint
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// ChangeStatus advances the delivery to the requested status, checked against
// the parent order's current status so the delivery never outruns its order.
// The delivery is left unmodified on failure.
//
// Example:
//
//	// order is Ready, delivery is Assigned
//	err := d.ChangeStatus(delivery.PickedUp, parentOrder.Status())
func (d *Delivery) ChangeStatus(next Status, orderStatus order.Status) error {
	newStatus, err := d.status.TransitionTo(next, orderStatus)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// setID validates and sets the delivery's unique identifier.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrderID validates and sets the immutable order reference.
func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setDispatcherID validates and sets the dispatcher identifier.
func (d *Delivery) setDispatcherID(dispatcherID kernel.UUID) error {
	if err := dispatcherID.Validate(); err != nil {
		return err
	}
	d.dispatcherID = dispatcherID
	return nil
}

// setPickup validates and sets the pickup address and coordinates.
func (d *Delivery) setPickup(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if err := point.Validate(); err != nil {
		return err
	}
	d.pickupAddress = address
	d.pickupPoint = point
	return nil
}

// setDropoff validates and sets the drop-off address and coordinates.
func (d *Delivery) setDropoff(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	if err := point.Validate(); err != nil {
		return err
	}
	d.dropoffAddress = address
	d.dropoffPoint = point
	return nil
}
