package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order and its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns an object-not-found error when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id, userID   uuid.UUID
		status       int
		createdAt    time.Time
		deliveryTime time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			created_at,
			delivery_time
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &userID, &status, &createdAt, &deliveryTime)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderSummary: OrderSummary{
			ID:           orderID,
			UserID:       ownerID,
			Status:       orderStatus,
			CreatedAt:    createdAt,
			DeliveryTime: deliveryTime,
		},
		Items: items,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemSummary, error) {
	items := make([]OrderItemSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
		)

		if err = rows.Scan(&productID, &quantity); err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemSummary{
			ProductID: itemProductID,
			Quantity:  quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
