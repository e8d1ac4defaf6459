package product_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := decimal.NewFromFloat(10.99)

	t.Run("creates a valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Bottles", price, 5)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Bottles", p.Name())
		assert.True(t, p.Price().Equal(price))
		assert.Equal(t, 5, p.Stock())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		tests := []struct {
			name      string
			id        kernel.UUID
			prodName  string
			price     decimal.Decimal
			stock     int
			wantError error
		}{
			{"zero id", kernel.UUID{}, "Bottles", price, 5, kernel.ErrUUIDIsNotConstructed},
			{"empty name", kernel.NewUUID(), "", price, 5, errs.ErrValueIsRequired},
			{"negative price", kernel.NewUUID(), "Bottles", decimal.NewFromInt(-1), 5, errs.ErrValueIsInvalid},
			{"negative stock", kernel.NewUUID(), "Bottles", price, -1, errs.ErrValueIsInvalid},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := product.NewProduct(tt.id, tt.prodName, tt.price, tt.stock)

				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
			})
		}
	})

	t.Run("allows zero price and zero stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Freebie", decimal.Zero, 0)

		require.NoError(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("fails for directly instantiated struct", func(t *testing.T) {
		var p product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("fails for nil product", func(t *testing.T) {
		var p *product.Product

		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_DecrementStock(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *product.Product {
		t.Helper()
		p, err := product.NewProduct(kernel.NewUUID(), "Fries", decimal.NewFromFloat(4.99), stock)
		require.NoError(t, err)
		return p
	}

	t.Run("decrements by the requested quantity", func(t *testing.T) {
		p := newProduct(t, 10)

		require.NoError(t, p.DecrementStock(3))

		assert.Equal(t, 7, p.Stock())
	})

	t.Run("can drain stock to zero", func(t *testing.T) {
		p := newProduct(t, 4)

		require.NoError(t, p.DecrementStock(4))

		assert.Equal(t, 0, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 10)

		for _, quantity := range []int{0, -1} {
			err := p.DecrementStock(quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("rejects a request above the available stock", func(t *testing.T) {
		p := newProduct(t, 5)

		err := p.DecrementStock(6)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Fries", stockErr.ProductName)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)

		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_CanFulfill(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Fries", decimal.NewFromFloat(4.99), 5)
	require.NoError(t, err)

	assert.True(t, p.CanFulfill(1))
	assert.True(t, p.CanFulfill(5))
	assert.False(t, p.CanFulfill(6))
	assert.False(t, p.CanFulfill(0))
	assert.False(t, p.CanFulfill(-1))
}
