package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the catalog aggregate: a sellable item with a unit price and a
// stock count.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Price must be non-negative
//   - Stock must be non-negative at all times; the only mutation is
//     DecrementStock, which refuses to go below zero
type Product struct {
	id    kernel.UUID
	name  string
	price decimal.Decimal
	stock int

	isConstructed bool
}

// NewProduct creates a Product after validating every field. This is the only
// way (besides RestoreProduct) to obtain a valid instance.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a Product from persistence. It applies the same
// validation as NewProduct.
func RestoreProduct(id kernel.UUID, name string, price decimal.Decimal, stock int) (*Product, error) {
	return NewProduct(id, name, price, stock)
}

// Validate ensures the Product was built through a constructor, preventing
// use of directly instantiated structs.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the available stock count.
func (p *Product) Stock() int {
	return p.stock
}

// CanFulfill reports whether the requested quantity is available.
func (p *Product) CanFulfill(quantity int) bool {
	return quantity > 0 && quantity <= p.stock
}

// DecrementStock reserves the given quantity by reducing the stock count.
//
// Returns InsufficientStockError when the request exceeds the available
// stock, keeping the stock >= 0 invariant impossible to break from outside.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("quantity for product '%s' must be positive", p.name),
		)
	}

	if quantity > p.stock {
		return errs.NewInsufficientStockError(p.name, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
