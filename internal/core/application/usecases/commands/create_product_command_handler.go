package commands

import (
	"context"

	"ordering/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalog product registration.
// Creates and persists new product entities with their initial stock.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Creates a new product entity and persists it within a transaction.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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
	productEntity, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, productEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
