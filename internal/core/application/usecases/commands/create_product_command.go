package commands

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a farmer publishing a new listing.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	farmerID  kernel.UUID
	name      string
	category  product.Category
	unitPrice kernel.Money
	quantity  int
	unit      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command publishing a new listing.
func NewCreateProductCommand(
	productID, farmerID kernel.UUID,
	name string,
	category product.Category,
	unitPrice kernel.Money,
	quantity int,
	unit string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setFarmerID(farmerID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setUnitPrice(unitPrice),
		cmd.setQuantity(quantity),
		cmd.setUnit(unit),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the listing will be created with.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// FarmerID returns the identifier of the publishing farmer.
func (c CreateProductCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// Name returns the listing title.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Category returns the listing category.
func (c CreateProductCommand) Category() product.Category {
	return c.category
}

// UnitPrice returns the price per unit of sale.
func (c CreateProductCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns the initial stock.
func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

// Unit returns the unit of sale.
func (c CreateProductCommand) Unit() string {
	return c.unit
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}

	c.farmerID = farmerID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateProductCommand) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsZero() {
		return errs.NewValueIsRequiredError("unitPrice")
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *CreateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity cannot be negative, got %d", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *CreateProductCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}

	c.unit = unit
	return nil
}
