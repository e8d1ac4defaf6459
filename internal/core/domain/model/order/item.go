package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Item is a line item within an order: a product reference and a quantity.
// Items are owned by their parent Order and have no independent lifecycle.
// The product is referenced by id only; price and stock are read live at
// creation time and not snapshotted onto the item.
type Item struct {
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a line item. The quantity must be strictly positive.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was built through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}
