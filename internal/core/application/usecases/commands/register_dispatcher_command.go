package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrRegisterDispatcherCommandIsNotConstructed = errors.New(
	"RegisterDispatcherCommand must be created via NewRegisterDispatcherCommand constructor",
)

// RegisterDispatcherCommand represents a new driver signing up to deliver
// orders. Registered dispatchers start active and immediately join the
// assignment pool.
type RegisterDispatcherCommand struct { //nolint:recvcheck //using for validation
	dispatcherID kernel.UUID
	name         string
	phone        string
	vehicle      dispatcher.VehicleType
	basePoint    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterDispatcherCommand creates a command registering a new dispatcher.
func NewRegisterDispatcherCommand(
	dispatcherID kernel.UUID,
	name string,
	phone string,
	vehicle dispatcher.VehicleType,
	basePoint kernel.GeoPoint,
) (RegisterDispatcherCommand, error) {
	cmd := RegisterDispatcherCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDispatcherID(dispatcherID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setVehicle(vehicle),
		cmd.setBasePoint(basePoint),
	); err != nil {
		return RegisterDispatcherCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDispatcherCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDispatcherCommandIsNotConstructed)
}

// DispatcherID returns the identifier the dispatcher will be created with.
func (c RegisterDispatcherCommand) DispatcherID() kernel.UUID {
	return c.dispatcherID
}

// Name returns the dispatcher's display name.
func (c RegisterDispatcherCommand) Name() string {
	return c.name
}

// Phone returns the dispatcher's contact number.
func (c RegisterDispatcherCommand) Phone() string {
	return c.phone
}

// Vehicle returns the vehicle the dispatcher delivers with.
func (c RegisterDispatcherCommand) Vehicle() dispatcher.VehicleType {
	return c.vehicle
}

// BasePoint returns the point deliveries start from.
func (c RegisterDispatcherCommand) BasePoint() kernel.GeoPoint {
	return c.basePoint
}

func (c *RegisterDispatcherCommand) setDispatcherID(dispatcherID kernel.UUID) error {
	if err := dispatcherID.Validate(); err != nil {
		return err
	}

	c.dispatcherID = dispatcherID
	return nil
}

func (c *RegisterDispatcherCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterDispatcherCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *RegisterDispatcherCommand) setVehicle(vehicle dispatcher.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

func (c *RegisterDispatcherCommand) setBasePoint(basePoint kernel.GeoPoint) error {
	if err := basePoint.Validate(); err != nil {
		return err
	}

	c.basePoint = basePoint
	return nil
}
