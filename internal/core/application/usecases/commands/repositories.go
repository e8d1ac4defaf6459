// Package commands contains business operations that modify system state.
// Each operation is a command/handler pair: the command validates its inputs
// at construction, the handler runs the read-validate-write sequence inside a
// unit-of-work transaction.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition that covers the
// aggregates they touch.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserRepoFactory provides the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations (advancement).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans all three aggregates. Order creation needs it: the user
	// check, the stock decrements, and the order insert share one
	// transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
