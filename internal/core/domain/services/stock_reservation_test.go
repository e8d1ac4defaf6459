package services_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, decimal.NewFromFloat(9.99), stock)
	require.NoError(t, err)
	return p
}

func TestStockReservation_Reserve(t *testing.T) {
	reservation := services.NewStockReservation()

	t.Run("decrements every requested product exactly once", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 10)
		fries := newProduct(t, "Fries", 7)
		catalog := []*product.Product{bottles, fries}

		touched, err := reservation.Reserve(catalog, []services.StockRequest{
			{ProductID: bottles.ID(), Quantity: 2},
			{ProductID: fries.ID(), Quantity: 3},
		})

		require.NoError(t, err)
		assert.Equal(t, []*product.Product{bottles, fries}, touched)
		assert.Equal(t, 8, bottles.Stock())
		assert.Equal(t, 4, fries.Stock())
	})

	t.Run("leaves unrequested products alone", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 10)
		fries := newProduct(t, "Fries", 7)

		touched, err := reservation.Reserve(
			[]*product.Product{bottles, fries},
			[]services.StockRequest{{ProductID: bottles.ID(), Quantity: 1}},
		)

		require.NoError(t, err)
		assert.Equal(t, []*product.Product{bottles}, touched)
		assert.Equal(t, 7, fries.Stock())
	})

	t.Run("fails when a product does not exist", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 10)
		missingID := kernel.NewUUID()

		_, err := reservation.Reserve(
			[]*product.Product{bottles},
			[]services.StockRequest{
				{ProductID: bottles.ID(), Quantity: 1},
				{ProductID: missingID, Quantity: 1},
			},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "product", notFound.ParamName)
		assert.Equal(t, missingID.String(), notFound.ID)

		assert.Equal(t, 10, bottles.Stock(), "no stock may change on failure")
	})

	t.Run("fails on non-positive quantity naming the product", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 10)
		fries := newProduct(t, "Fries", 7)

		_, err := reservation.Reserve(
			[]*product.Product{bottles, fries},
			[]services.StockRequest{
				{ProductID: bottles.ID(), Quantity: 2},
				{ProductID: fries.ID(), Quantity: 0},
			},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Fries")

		assert.Equal(t, 10, bottles.Stock())
		assert.Equal(t, 7, fries.Stock())
	})

	t.Run("fails on insufficient stock with requested and available", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 5)

		_, err := reservation.Reserve(
			[]*product.Product{bottles},
			[]services.StockRequest{{ProductID: bottles.ID(), Quantity: 6}},
		)

		require.Error(t, err)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Bottles", stockErr.ProductName)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)

		assert.Equal(t, 5, bottles.Stock())
	})

	t.Run("accumulates split requests for the same product", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 5)

		_, err := reservation.Reserve(
			[]*product.Product{bottles},
			[]services.StockRequest{
				{ProductID: bottles.ID(), Quantity: 3},
				{ProductID: bottles.ID(), Quantity: 3},
			},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 5, bottles.Stock())
	})

	t.Run("allows a split request within stock", func(t *testing.T) {
		bottles := newProduct(t, "Bottles", 5)

		touched, err := reservation.Reserve(
			[]*product.Product{bottles},
			[]services.StockRequest{
				{ProductID: bottles.ID(), Quantity: 2},
				{ProductID: bottles.ID(), Quantity: 3},
			},
		)

		require.NoError(t, err)
		assert.Equal(t, []*product.Product{bottles}, touched)
		assert.Equal(t, 0, bottles.Stock())
	})

	t.Run("earlier checks win over later ones", func(t *testing.T) {
		// One line has a bad quantity, another references a missing product:
		// the existence pass runs first, so "not found" is reported.
		bottles := newProduct(t, "Bottles", 5)

		_, err := reservation.Reserve(
			[]*product.Product{bottles},
			[]services.StockRequest{
				{ProductID: bottles.ID(), Quantity: 0},
				{ProductID: kernel.NewUUID(), Quantity: 1},
			},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects an empty request list", func(t *testing.T) {
		_, err := reservation.Reserve(nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
