package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order directly from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results are sorted by creation time for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			created_at,
			delivery_time
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderSummary converts one orders row into the shared read model.
func scanOrderSummary(scan func(dest ...any) error) (OrderSummary, error) {
	var (
		id, userID   uuid.UUID
		status       int
		createdAt    time.Time
		deliveryTime time.Time
	)

	if err := scan(&id, &userID, &status, &createdAt, &deliveryTime); err != nil {
		return OrderSummary{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:           orderID,
		UserID:       ownerID,
		Status:       orderStatus,
		CreatedAt:    createdAt,
		DeliveryTime: deliveryTime,
	}, nil
}
