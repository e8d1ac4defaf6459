package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler moves an order one stage along the
// pipeline: exactly one read and at most one write per call. Advancing an
// order that is already Delivered is an idempotent no-op that performs no
// write and reports the terminal status.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for order advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advancement command and returns the resulting status.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	newStatus, advanced := o.Advance(cmd.Now())
	if !advanced {
		// Terminal state: nothing changed, skip the write entirely.
		return newStatus, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return newStatus, nil
}
