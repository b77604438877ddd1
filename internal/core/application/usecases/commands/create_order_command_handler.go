package commands

import (
	"context"
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

const (
	// farmerSharePercent is the farmer's cut of the order total.
	farmerSharePercent = 90
	// dispatcherSharePercent is the dispatcher's delivery fee cut of the order
	// total. The remainder after both shares is the platform fee.
	dispatcherSharePercent = 5
)

var (
	ErrProductNotAvailable = errors.New("product is not available for ordering")
	ErrProductWrongFarmer  = errors.New("product does not belong to the order's farmer")
	ErrNotEnoughStock      = errors.New("not enough stock to fulfil the order")
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Snapshots listing prices into order line items, reserves stock and creates
// the order in pending status, all within one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires an OrderProductUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderProductUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// For every requested line the product listing is loaded, checked for
// availability and ownership, and its stock reserved. Prices are snapshotted
// into the order so later listing changes do not affect placed orders.
// The whole operation commits or rolls back as a unit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	items := make([]order.Item, 0, len(cmd.Lines()))
	var total kernel.Money

	for _, line := range cmd.Lines() {
		listing, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if !listing.FarmerID().IsEqual(cmd.FarmerID()) {
			return fmt.Errorf("%w: product %s", ErrProductWrongFarmer, listing.ID())
		}
		if !listing.IsAvailable() {
			return fmt.Errorf("%w: product %s", ErrProductNotAvailable, listing.ID())
		}

		if err = listing.Reserve(line.Quantity); err != nil {
			if errors.Is(err, errs.ErrValueIsInvalid) {
				return fmt.Errorf("%w: product %s", ErrNotEnoughStock, listing.ID())
			}
			return err
		}

		item, err := order.NewItem(listing.ID(), listing.Name(),
			listing.UnitPrice(), line.Quantity, listing.Unit())
		if err != nil {
			return err
		}

		lineTotal, err := item.Total()
		if err != nil {
			return err
		}

		items = append(items, item)
		total = total.Add(lineTotal)

		if err = productRepo.Update(ctx, listing); err != nil {
			return err
		}
	}

	farmerAmount, err := total.Percent(farmerSharePercent)
	if err != nil {
		return err
	}
	dispatcherAmount, err := total.Percent(dispatcherSharePercent)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), cmd.FarmerID(),
		items, total, farmerAmount, dispatcherAmount,
		cmd.PickupAddress(), cmd.PickupPoint(),
		cmd.DeliveryAddress(), cmd.DeliveryPoint(),
		cmd.PaymentMethod(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
