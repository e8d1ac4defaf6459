package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// The lifecycle engine only reads users, to validate that an order's owner
// exists; writes come from the user-management use cases.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAll retrieves every stored user.
	GetAll(ctx context.Context) ([]*user.User, error)
}
