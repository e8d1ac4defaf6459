// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded with the order.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;index"`
	Status       int            `gorm:"index"`
	CreatedAt    time.Time      `gorm:"type:timestamptz"`
	DeliveryTime time.Time      `gorm:"type:timestamptz;index"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// An aggregate may carry several lines for the same product (split requests);
// order_items keys on (order_id, product_id), so quantities for the same
// product are summed into one row.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	rowByProduct := make(map[uuid.UUID]int, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		productID := item.ProductID().Bytes()
		if row, ok := rowByProduct[productID]; ok {
			items[row].Quantity += item.Quantity()
			continue
		}
		rowByProduct[productID] = len(items)
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: productID,
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		DeliveryTime: aggregate.DeliveryTime(),
		Items:        items,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, so the stored delivery estimate is preserved as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		items,
		dto.CreatedAt,
		dto.DeliveryTime,
		order.Status(dto.Status),
	)
}
