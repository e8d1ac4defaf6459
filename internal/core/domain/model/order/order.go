package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the lifecycle engine. It is created once in
// Created status and only ever mutated by Advance, which moves the status one
// pipeline stage forward and recomputes the delivery estimate. Orders are
// never deleted.
//
// Invariants:
//   - Must have a valid unique identifier and owning user id
//   - Must contain at least one line item, each with a positive quantity
//   - Status transitions follow the linear pipeline in status.go
//   - The delivery estimate is recomputed on every status change
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	items        []Item
	createdAt    time.Time
	deliveryTime time.Time
	status       Status

	isConstructed bool
}

// NewOrder creates a new Order in Created status. The creation timestamp is
// caller-supplied so tests can pin it; the initial delivery estimate is
// anchored at that same instant for the Created stage.
func NewOrder(id kernel.UUID, userID kernel.UUID, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.deliveryTime = EstimateDelivery(createdAt, Created)
	return o, nil
}

// RestoreOrder rehydrates an Order from persistence without recomputing the
// delivery estimate.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	createdAt time.Time,
	deliveryTime time.Time,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, userID, items, createdAt)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.deliveryTime = deliveryTime
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order's line items. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryTime returns the expected delivery timestamp for the current stage.
func (o *Order) DeliveryTime() time.Time {
	return o.deliveryTime
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Advance moves the order exactly one stage forward and recomputes the
// delivery estimate anchored at now for the new stage. At the terminal stage
// it is a no-op: the terminal status is returned with advanced=false and
// nothing on the order changes, so callers can skip the store write.
func (o *Order) Advance(now time.Time) (newStatus Status, advanced bool) {
	next, ok := o.status.Next()
	if !ok {
		return o.status, false
	}

	o.status = next
	o.deliveryTime = EstimateDelivery(now, next)
	return next, true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
