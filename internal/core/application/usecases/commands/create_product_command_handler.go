package commands

import (
	"context"

	"farmmarket/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles publishing new listings.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for publishing listings.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the publishing command and persists the new listing.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	listing, err := product.NewProduct(cmd.ProductID(), cmd.FarmerID(),
		cmd.Name(), cmd.Category(), cmd.UnitPrice(), cmd.Quantity(), cmd.Unit())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, listing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
