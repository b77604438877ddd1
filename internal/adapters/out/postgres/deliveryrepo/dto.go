// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Each order has at most one delivery, enforced by the unique index on order_id.
type DeliveryDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID   `gorm:"type:uuid;uniqueIndex"`
	DispatcherID   uuid.UUID   `gorm:"type:uuid;index"`
	PickupAddress  string      `gorm:"not null"`
	Pickup         GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	DropoffAddress string      `gorm:"not null"`
	Dropoff        GeoPointDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	Status         string      `gorm:"index;not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// GeoPointDTO represents embedded geographic coordinates within a table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		DispatcherID:  aggregate.DispatcherID().Bytes(),
		PickupAddress: aggregate.PickupAddress(),
		Pickup: GeoPointDTO{
			Latitude:  aggregate.PickupPoint().Latitude(),
			Longitude: aggregate.PickupPoint().Longitude(),
		},
		DropoffAddress: aggregate.DropoffAddress(),
		Dropoff: GeoPointDTO{
			Latitude:  aggregate.DropoffPoint().Latitude(),
			Longitude: aggregate.DropoffPoint().Longitude(),
		},
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	dispatcherID, err := kernel.UUIDFromBytes(dto.DispatcherID[:])
	if err != nil {
		return nil, err
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	dropoffPoint, err := kernel.NewGeoPoint(dto.Dropoff.Latitude, dto.Dropoff.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, dispatcherID,
		dto.PickupAddress, pickupPoint,
		dto.DropoffAddress, dropoffPoint,
		status)
}
