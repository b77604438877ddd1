package dispatcher

import (
	"farmmarket/internal/pkg/errs"
)

// VehicleType classifies the vehicle a dispatcher delivers with.
type VehicleType string

const (
	VehicleBicycle   VehicleType = "bicycle"
	VehicleMotorbike VehicleType = "motorbike"
	VehicleCar       VehicleType = "car"
	VehicleVan       VehicleType = "van"
)

// VehicleTypeFromString parses a vehicle type from its string form.
func VehicleTypeFromString(s string) (VehicleType, error) {
	v := VehicleType(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate checks that the vehicle type is one of the known values.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleBicycle, VehicleMotorbike, VehicleCar, VehicleVan:
		return nil
	default:
		return errs.NewValueIsInvalidError("vehicleType")
	}
}

// String returns the string form of the vehicle type.
func (v VehicleType) String() string {
	return string(v)
}
