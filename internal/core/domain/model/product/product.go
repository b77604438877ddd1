package product

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUnitIsRequired is returned when attempting to create a product without a unit of sale.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New(
		"Product must be created via NewProduct or RestoreProduct constructor")
)

// Product is a farm listing buyers can order from.
//
// Business rules:
//   - quantity in stock never goes below zero, reserving more than is in
//     stock fails and leaves the listing unchanged
//   - only active listings with stock are offered to buyers
type Product struct {
	// id uniquely identifies the listing
	id kernel.UUID
	// farmerID identifies the farmer who owns the listing
	farmerID kernel.UUID
	// name is the listing title shown to buyers
	name string
	// category groups the listing for browsing
	category Category
	// unitPrice is the price per unit of sale
	unitPrice kernel.Money
	// quantity is the number of units still in stock
	quantity int
	// unit is the unit of sale, for example "kg" or "dozen"
	unit string
	// active controls whether the listing is visible to buyers
	active bool
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new active Product listing.
// Quantity may be zero for a listing created ahead of harvest.
func NewProduct(
	id, farmerID kernel.UUID,
	name string,
	category Category,
	unitPrice kernel.Money,
	quantity int,
	unit string,
) (*Product, error) {
	p := &Product{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setFarmerID(farmerID),
		p.setName(name),
		p.setCategory(category),
		p.setUnitPrice(unitPrice),
		p.setQuantity(quantity),
		p.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
func RestoreProduct(
	id, farmerID kernel.UUID,
	name string,
	category Category,
	unitPrice kernel.Money,
	quantity int,
	unit string,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, farmerID, name, category, unitPrice, quantity, unit)
	if err != nil {
		return nil, err
	}

	p.active = active
	return p, nil
}

// IsEqual compares two products for equality based on their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the unique identifier of the listing.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// FarmerID returns the identifier of the farmer who owns the listing.
func (p *Product) FarmerID() kernel.UUID {
	return p.farmerID
}

// Name returns the listing title.
func (p *Product) Name() string {
	return p.name
}

// Category returns the listing category.
func (p *Product) Category() Category {
	return p.category
}

// UnitPrice returns the price per unit of sale.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Quantity returns the number of units still in stock.
func (p *Product) Quantity() int {
	return p.quantity
}

// Unit returns the unit of sale.
func (p *Product) Unit() string {
	return p.unit
}

// IsActive reports whether the listing is visible to buyers.
func (p *Product) IsActive() bool {
	return p.active
}

// IsAvailable reports whether buyers can order from the listing right now.
func (p *Product) IsAvailable() bool {
	return p.active && p.quantity > 0
}

// Activate makes the listing visible to buyers.
func (p *Product) Activate() {
	p.active = true
}

// Deactivate hides the listing from buyers without losing its stock.
func (p *Product) Deactivate() {
	p.active = false
}

// ChangeUnitPrice updates the price per unit of sale.
// Orders already placed keep the price they were created with.
func (p *Product) ChangeUnitPrice(unitPrice kernel.Money) error {
	return p.setUnitPrice(unitPrice)
}

// Restock adds harvested units to the listing.
func (p *Product) Restock(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units",
			fmt.Errorf("restock amount must be positive, got %d", units))
	}

	p.quantity += units
	return nil
}

// Reserve removes units from stock for a newly created order.
// Reserving more than is in stock fails and leaves the listing unchanged.
func (p *Product) Reserve(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units",
			fmt.Errorf("reserve amount must be positive, got %d", units))
	}

	if units > p.quantity {
		return errs.NewValueIsInvalidErrorWithCause("units",
			fmt.Errorf("cannot reserve %d units, only %d in stock", units, p.quantity))
	}

	p.quantity -= units
	return nil
}

// Release returns reserved units to stock after an order is cancelled.
func (p *Product) Release(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units",
			fmt.Errorf("release amount must be positive, got %d", units))
	}

	p.quantity += units
	return nil
}

// setID sets the listing's unique identifier with validation.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setFarmerID sets the owning farmer's identifier with validation.
func (p *Product) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	p.farmerID = farmerID
	return nil
}

// setName sets the listing title with validation.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setCategory sets the listing category with validation.
func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	p.category = category
	return nil
}

// setUnitPrice sets the price per unit of sale with validation.
func (p *Product) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsZero() {
		return errs.NewValueIsRequiredError("unitPrice")
	}

	p.unitPrice = unitPrice
	return nil
}

// setQuantity sets the initial stock with validation.
func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity cannot be negative, got %d", quantity))
	}

	p.quantity = quantity
	return nil
}

// setUnit sets the unit of sale with validation.
func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}

	p.unit = unit
	return nil
}
