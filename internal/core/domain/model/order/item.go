package order

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item that bypassed NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an immutable order line: a quantity of one product at the unit price
// captured when the order was placed. The price is snapshotted on the item so
// later catalog changes never alter an existing order's total.
type Item struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	unit      string

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// The product name and unit (e.g. "kg", "crate", "bunch") must be non-empty
// and the quantity positive.
func NewItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int, unit string) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unit == "" {
		return Item{}, errs.NewValueIsRequiredError("item unit")
	}

	return Item{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		unit:      unit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog product this line refers to.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured at checkout.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Unit returns the sales unit the quantity is counted in.
func (i Item) Unit() string {
	return i.unit
}

// Total returns unit price multiplied by quantity.
func (i Item) Total() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.Multiply(i.quantity)
}
