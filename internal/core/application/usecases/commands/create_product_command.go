package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a new product to the
// catalog. A unique product ID is generated by the constructor.
//
// Example:
//
//	cmd, err := NewCreateProductCommand("Bottles", decimal.NewFromFloat(10.99), 5)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
//	fmt.Printf("Created product with ID: %s", cmd.ProductID())
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     decimal.Decimal
	stock     int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new catalog product.
// Automatically generates a unique ID for the product.
// Validates that name is not empty, price is non-negative, and stock is non-negative.
func NewCreateProductCommand(name string, price decimal.Decimal, stock int) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated product ID.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name from the command.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product price from the command.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// Stock returns the initial stock level from the command.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
