// Package dispatcherrepo provides data transfer objects and mapping functions
// for dispatcher persistence, plus the workload aggregation used by assignment.
package dispatcherrepo

import (
	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatcherDTO represents the database structure for persisting dispatcher aggregates.
type DispatcherDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"not null"`
	Phone       string      `gorm:"not null"`
	VehicleType string      `gorm:"not null"`
	Base        GeoPointDTO `gorm:"embedded;embeddedPrefix:base_"`
	Active      bool        `gorm:"index"`
}

// TableName specifies the database table name for dispatcher entities.
func (DispatcherDTO) TableName() string {
	return "dispatchers"
}

// GeoPointDTO represents embedded geographic coordinates within a table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a dispatcher domain aggregate to its database representation.
func fromDomain(aggregate *dispatcher.Dispatcher) DispatcherDTO {
	return DispatcherDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		VehicleType: aggregate.Vehicle().String(),
		Base: GeoPointDTO{
			Latitude:  aggregate.BasePoint().Latitude(),
			Longitude: aggregate.BasePoint().Longitude(),
		},
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a dispatcher domain aggregate.
func toDomain(dto DispatcherDTO) (*dispatcher.Dispatcher, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := dispatcher.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	basePoint, err := kernel.NewGeoPoint(dto.Base.Latitude, dto.Base.Longitude)
	if err != nil {
		return nil, err
	}

	return dispatcher.RestoreDispatcher(id, dto.Name, dto.Phone, vehicle, basePoint, dto.Active)
}
