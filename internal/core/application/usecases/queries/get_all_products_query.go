package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
)

// GetAllProductsQuery retrieves the whole catalog with current stock levels.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse represents one catalog product in the read model.
type GetAllProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}
