package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput is one requested order line as it arrives from the caller.
// Quantities are deliberately not validated here: the lifecycle engine
// reports a bad quantity as its own failure kind, with the product named.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order for a user.
// The creation timestamp is caller-supplied so the delivery estimate (and
// tests) are deterministic.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	items   []OrderItemInput
	now     time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. It validates
// that the user id is set, at least one item is present, every item has a
// valid product id, and the timestamp is non-zero. Business checks (user and
// product existence, quantity, stock) belong to the handler.
func NewCreateOrderCommand(userID kernel.UUID, items []OrderItemInput, now time.Time) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setNow(now),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order being created.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the order's owner.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	items := make([]OrderItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// Now returns the caller-supplied creation timestamp.
func (c CreateOrderCommand) Now() time.Time {
	return c.now
}

// StockRequests converts the order lines into reservation requests.
func (c CreateOrderCommand) StockRequests() []services.StockRequest {
	requests := make([]services.StockRequest, len(c.items))
	for i, item := range c.items {
		requests[i] = services.StockRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return requests
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]OrderItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
