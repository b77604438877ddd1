package dispatcher

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// Domain errors for dispatcher operations.
var (
	// ErrNameIsRequired is returned when attempting to create a dispatcher without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a dispatcher without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDispatcherIsNotConstructed is returned when using an improperly initialized Dispatcher.
	ErrDispatcherIsNotConstructed = errors.New(
		"Dispatcher must be created via NewDispatcher or RestoreDispatcher constructor")
)

// Dispatcher represents an independent delivery driver registered on the
// marketplace. It is an aggregate root holding the dispatcher's identity,
// contact details, vehicle and base point.
//
// Business rules:
//   - a dispatcher must have a valid UUID, non-empty name and phone number
//   - only active dispatchers participate in automatic order assignment
//   - the base point is where deliveries are assumed to start from when
//     estimating pickup distance
//
// Example usage:
//
//	base, _ := kernel.NewGeoPoint(-26.2041, 28.0473)
//	d, err := NewDispatcher(kernel.NewUUID(), "Sipho Dlamini", "+27821234567",
//	    dispatcher.VehicleMotorbike, base)
type Dispatcher struct {
	// id uniquely identifies the dispatcher
	id kernel.UUID
	// name is the dispatcher's display name
	name string
	// phone is the contact number buyers and farmers can reach the dispatcher on
	phone string
	// vehicle is the vehicle used for deliveries
	vehicle VehicleType
	// basePoint is where the dispatcher's deliveries start from
	basePoint kernel.GeoPoint
	// active controls participation in automatic assignment
	active bool
	// guard ensures the dispatcher was properly constructed
	guard guard.ConstructorGuard
}

// NewDispatcher creates a new active Dispatcher with the specified parameters.
// All parameters are validated; errors are aggregated.
func NewDispatcher(
	id kernel.UUID,
	name string,
	phone string,
	vehicle VehicleType,
	basePoint kernel.GeoPoint,
) (*Dispatcher, error) {
	d := &Dispatcher{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicle(vehicle),
		d.setBasePoint(basePoint),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispatcher reconstructs a Dispatcher aggregate from persistent
// storage, including its availability flag.
func RestoreDispatcher(
	id kernel.UUID,
	name string,
	phone string,
	vehicle VehicleType,
	basePoint kernel.GeoPoint,
	active bool,
) (*Dispatcher, error) {
	d, err := NewDispatcher(id, name, phone, vehicle, basePoint)
	if err != nil {
		return nil, err
	}

	d.active = active
	return d, nil
}

// IsEqual compares two dispatchers for equality based on their unique identifiers.
func (d *Dispatcher) IsEqual(other *Dispatcher) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Dispatcher was properly constructed.
// The zero value of Dispatcher is invalid and will fail this validation.
func (d *Dispatcher) Validate() error {
	if d == nil {
		return ErrDispatcherIsNotConstructed
	}
	return d.guard.Validate(ErrDispatcherIsNotConstructed)
}

// ID returns the unique identifier of the dispatcher.
func (d *Dispatcher) ID() kernel.UUID {
	return d.id
}

// Name returns the dispatcher's display name.
func (d *Dispatcher) Name() string {
	return d.name
}

// Phone returns the dispatcher's contact number.
func (d *Dispatcher) Phone() string {
	return d.phone
}

// Vehicle returns the vehicle the dispatcher delivers with.
func (d *Dispatcher) Vehicle() VehicleType {
	return d.vehicle
}

// BasePoint returns the point the dispatcher's deliveries start from.
func (d *Dispatcher) BasePoint() kernel.GeoPoint {
	return d.basePoint
}

// IsActive reports whether the dispatcher participates in automatic assignment.
func (d *Dispatcher) IsActive() bool {
	return d.active
}

// Activate makes the dispatcher available for automatic assignment.
func (d *Dispatcher) Activate() {
	d.active = true
}

// Deactivate removes the dispatcher from the automatic assignment pool.
// Deliveries already in progress are not affected.
func (d *Dispatcher) Deactivate() {
	d.active = false
}

// DistanceToPickupKm estimates the straight-line distance in kilometers from
// the dispatcher's base point to a pickup location.
func (d *Dispatcher) DistanceToPickupKm(pickup kernel.GeoPoint) (float64, error) {
	if err := pickup.Validate(); err != nil {
		return 0, err
	}

	return d.basePoint.DistanceKm(pickup)
}

// setID sets the dispatcher's unique identifier with validation.
func (d *Dispatcher) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setName sets the dispatcher's name with validation.
func (d *Dispatcher) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

// setPhone sets the dispatcher's contact number with validation.
func (d *Dispatcher) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	d.phone = phone
	return nil
}

// setVehicle sets the dispatcher's vehicle type with validation.
func (d *Dispatcher) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	d.vehicle = vehicle
	return nil
}

// setBasePoint sets the dispatcher's base point with validation.
func (d *Dispatcher) setBasePoint(basePoint kernel.GeoPoint) error {
	if err := basePoint.Validate(); err != nil {
		return err
	}

	d.basePoint = basePoint
	return nil
}
