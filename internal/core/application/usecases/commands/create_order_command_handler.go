package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderCommandHandler orchestrates order creation: it validates that
// the owner exists, reserves stock through the StockReservation domain
// service, and persists the decrements together with the new order inside a
// single unit-of-work transaction.
//
// All precondition checks run before any store write, so a failing creation
// leaves both the catalog and the order store untouched.
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	reservation services.StockReservation
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning user, product, and order repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		reservation: services.NewStockReservation(),
	}
}

// Handle processes the order creation command and returns the created order.
// The checks run in a fixed precedence: owner existence, product existence,
// quantity positivity, stock sufficiency. Any failure aborts before a single
// mutation is issued.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	// One bulk fetch keeps the item checks O(items), not O(items x catalog).
	productRepo := uow.ProductRepository()
	catalog, err := productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	touched, err := h.reservation.Reserve(catalog, cmd.StockRequests())
	if err != nil {
		return nil, err
	}

	for _, p := range touched {
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(input.ProductID, input.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), items, cmd.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
