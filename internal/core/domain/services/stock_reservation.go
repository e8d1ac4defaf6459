package services

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// StockRequest is one requested line of a reservation: a product reference
// and the quantity to reserve. Quantities are validated by the reservation,
// not at construction, so a bad quantity can be reported with the product's
// name attached.
type StockRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// StockReservation is the domain service that validates an order's line items
// against the catalog and applies the stock decrements.
//
// Reservation is all-or-nothing: every check runs for every request before
// any product is touched, so either all decrements apply together or no
// product changes at all. The checks run in a fixed precedence:
//
//  1. every requested product must exist in the catalog
//  2. every requested quantity must be strictly positive
//  3. the total requested per product must not exceed its current stock
type StockReservation struct{}

// NewStockReservation creates a StockReservation service instance.
func NewStockReservation() StockReservation {
	return StockReservation{}
}

// Reserve validates the requests against the catalog and decrements the
// stock of each affected product. Requests referencing the same product are
// accumulated before the stock check, so a split request cannot slip past a
// per-line comparison.
//
// On success it returns the touched products, in first-appearance order, for
// the caller to persist. On any failure no product is mutated.
func (s StockReservation) Reserve(
	catalog []*product.Product,
	requests []StockRequest,
) ([]*product.Product, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*product.Product, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	for _, r := range requests {
		if _, ok := byID[r.ProductID]; !ok {
			return nil, errs.NewObjectNotFoundError("product", r.ProductID.String())
		}
	}

	for _, r := range requests {
		if r.Quantity <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("quantity for product '%s' must be positive", byID[r.ProductID].Name()),
			)
		}
	}

	touched := make([]*product.Product, 0, len(requests))
	totals := make(map[kernel.UUID]int, len(requests))
	for _, r := range requests {
		if _, seen := totals[r.ProductID]; !seen {
			touched = append(touched, byID[r.ProductID])
		}
		totals[r.ProductID] += r.Quantity
	}

	for _, p := range touched {
		if total := totals[p.ID()]; total > p.Stock() {
			return nil, errs.NewInsufficientStockError(p.Name(), total, p.Stock())
		}
	}

	// Validation is complete; from here every decrement must succeed.
	for _, p := range touched {
		if err := p.DecrementStock(totals[p.ID()]); err != nil {
			return nil, err
		}
	}

	return touched, nil
}
