// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and dispatcher assignment.
type OrderDTO struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	BuyerID               uuid.UUID   `gorm:"type:uuid;index"`
	FarmerID              uuid.UUID   `gorm:"type:uuid;index"`
	DispatcherID          *uuid.UUID  `gorm:"type:uuid;index"`
	Items                 []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmountCents      int64       `gorm:"not null"`
	FarmerAmountCents     int64       `gorm:"not null"`
	DispatcherAmountCents int64       `gorm:"not null"`
	PickupAddress         string      `gorm:"not null"`
	Pickup                GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryAddress       string      `gorm:"not null"`
	Delivery              GeoPointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod         string      `gorm:"not null"`
	PaymentStatus         string      `gorm:"not null"`
	Status                string      `gorm:"index;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the database.
// Lines are immutable once the order is placed, so updates never touch them.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	Name           string    `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	Unit           string    `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// GeoPointDTO represents embedded geographic coordinates within a table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional dispatcher assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var dispatcherID *uuid.UUID
	if id := aggregate.Dispatcher(); id != nil {
		raw := id.Bytes()
		dispatcherID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			Unit:           item.Unit(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		BuyerID:               aggregate.BuyerID().Bytes(),
		FarmerID:              aggregate.FarmerID().Bytes(),
		DispatcherID:          dispatcherID,
		Items:                 items,
		TotalAmountCents:      aggregate.TotalAmount().Cents(),
		FarmerAmountCents:     aggregate.FarmerAmount().Cents(),
		DispatcherAmountCents: aggregate.DispatcherAmount().Cents(),
		PickupAddress:         aggregate.PickupAddress(),
		Pickup: GeoPointDTO{
			Latitude:  aggregate.PickupPoint().Latitude(),
			Longitude: aggregate.PickupPoint().Longitude(),
		},
		DeliveryAddress: aggregate.DeliveryAddress(),
		Delivery: GeoPointDTO{
			Latitude:  aggregate.DeliveryPoint().Latitude(),
			Longitude: aggregate.DeliveryPoint().Longitude(),
		},
		PaymentMethod: aggregate.PaymentMethod().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Status:        aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, payment state and
// dispatcher assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	var dispatcherID *kernel.UUID
	if dto.DispatcherID != nil {
		dID, dispatcherErr := kernel.UUIDFromBytes((*dto.DispatcherID)[:])
		if dispatcherErr != nil {
			return nil, dispatcherErr
		}

		dispatcherID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}
	farmerAmount, err := kernel.NewMoney(dto.FarmerAmountCents)
	if err != nil {
		return nil, err
	}
	dispatcherAmount, err := kernel.NewMoney(dto.DispatcherAmountCents)
	if err != nil {
		return nil, err
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}
	deliveryPoint, err := kernel.NewGeoPoint(dto.Delivery.Latitude, dto.Delivery.Longitude)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, buyerID, farmerID, dispatcherID, items,
		total, farmerAmount, dispatcherAmount,
		dto.PickupAddress, pickupPoint,
		dto.DeliveryAddress, deliveryPoint,
		paymentMethod, paymentStatus, status)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Name, unitPrice, dto.Quantity, dto.Unit)
}
