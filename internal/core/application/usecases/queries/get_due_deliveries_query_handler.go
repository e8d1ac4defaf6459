package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDueDeliveriesQueryHandler finds in-flight deliveries past their
// estimated delivery time.
type GetDueDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDueDeliveriesQueryHandler creates a handler for due-delivery queries.
func NewGetDueDeliveriesQueryHandler(db *gorm.DB) GetDueDeliveriesQueryHandler {
	return GetDueDeliveriesQueryHandler{db: db}
}

// Handle executes the query to find deliveries due for completion.
// Returns orders in the delivery status whose estimate is at or before now.
func (h GetDueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDueDeliveriesQuery,
) ([]GetDueDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	due := make([]GetDueDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE status = ? AND delivery_time <= ?
		ORDER BY delivery_time
	`, order.Delivery, query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID

		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		due = append(due, GetDueDeliveriesQueryResponse{ID: orderID})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return due, nil
}
