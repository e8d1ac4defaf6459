package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse represents one user in API responses.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductResponse represents one catalog product in API responses.
type ProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// OrderItemRequest is one requested line of POST /api/v1/orders.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID uuid.UUID          `json:"user_id"`
	Items  []OrderItemRequest `json:"items"`
}

// OrderItemResponse is one order line in API responses.
type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderResponse represents one order in API responses.
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	DeliveryTime time.Time           `json:"delivery_time"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// OrderStatusResponse is the body of GET /api/v1/orders/:orderID/status and
// POST /api/v1/orders/:orderID/advance.
type OrderStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// DeliveryTimeResponse is the body of GET /api/v1/orders/:orderID/delivery-time.
type DeliveryTimeResponse struct {
	ID           uuid.UUID `json:"id"`
	DeliveryTime time.Time `json:"delivery_time"`
}
