// Package ports defines the persistence contracts the application core
// depends on. Each repository is a narrow capability interface so the
// lifecycle engine never relies on storage-specific query features and can be
// tested against in-memory substitutes.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
