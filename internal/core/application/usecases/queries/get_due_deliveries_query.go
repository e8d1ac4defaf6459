package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetDueDeliveriesQueryIsNotConstructed = errors.New(
		"GetDueDeliveriesQuery must be created via NewGetDueDeliveriesQuery constructor",
	)
)

// GetDueDeliveriesQuery finds orders that are out for delivery and whose
// estimated delivery time has passed. The background completion job advances
// each of them to the terminal status.
type GetDueDeliveriesQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetDueDeliveriesQuery creates a query for overdue deliveries as of now.
func NewGetDueDeliveriesQuery(now time.Time) (GetDueDeliveriesQuery, error) {
	query := GetDueDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setNow(now); err != nil {
		return GetDueDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDueDeliveriesQueryIsNotConstructed)
}

// Now returns the cut-off instant for the due check.
func (q GetDueDeliveriesQuery) Now() time.Time {
	return q.now
}

func (q *GetDueDeliveriesQuery) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	q.now = now
	return nil
}

// GetDueDeliveriesQueryResponse identifies one order due for completion.
type GetDueDeliveriesQueryResponse struct {
	ID kernel.UUID
}
