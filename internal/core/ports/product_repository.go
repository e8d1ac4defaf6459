package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
//
// Order creation resolves every line item against GetAll (one bulk fetch)
// rather than per-item Get calls, and pushes stock decrements through Update.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product (name, price, stock).
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
