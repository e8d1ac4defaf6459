package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates a valid item", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := order.NewItem(productID, 3)

		require.NoError(t, err)
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 3, item.Quantity())
		require.NoError(t, item.Validate())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects zero product id", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, 1)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	createdAt := date(2, 10, 0) // Monday 10:00

	t.Run("creates an order in Created status with an initial estimate", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		items := []order.Item{mustItem(t, 2), mustItem(t, 3)}

		o, err := order.NewOrder(id, userID, items, createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, order.EstimateDelivery(createdAt, order.Created), o.DeliveryTime())
	})

	t.Run("rejects an order without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{{}}, createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("rejects zero ids and zero timestamps", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1)}

		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), items, createdAt)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, items, createdAt)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, time.Time{})
		require.Error(t, err)
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		items := []order.Item{mustItem(t, 1)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, createdAt)
		require.NoError(t, err)

		got := o.Items()
		got[0] = order.Item{}

		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := date(2, 10, 0)
	deliveryTime := date(9, 15, 0)

	t.Run("rehydrates without recomputing the estimate", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1)},
			createdAt, deliveryTime, order.Delivery,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Delivery, o.Status())
		assert.Equal(t, deliveryTime, o.DeliveryTime())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1)},
			createdAt, deliveryTime, order.Unknown,
		)

		require.Error(t, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, 1)},
			date(2, 10, 0),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("moves Created to Delivery and re-anchors the estimate", func(t *testing.T) {
		o := newOrder(t)
		now := date(3, 11, 0) // Tuesday 11:00

		newStatus, advanced := o.Advance(now)

		assert.True(t, advanced)
		assert.Equal(t, order.Delivery, newStatus)
		assert.Equal(t, order.Delivery, o.Status())
		assert.Equal(t, order.EstimateDelivery(now, order.Delivery), o.DeliveryTime())
	})

	t.Run("moves Delivery to Delivered", func(t *testing.T) {
		o := newOrder(t)
		o.Advance(date(3, 11, 0))

		now := date(4, 12, 0)
		newStatus, advanced := o.Advance(now)

		assert.True(t, advanced)
		assert.Equal(t, order.Delivered, newStatus)
		assert.Equal(t, order.EstimateDelivery(now, order.Delivered), o.DeliveryTime())
	})

	t.Run("is a no-op at the terminal stage", func(t *testing.T) {
		o := newOrder(t)
		o.Advance(date(3, 11, 0))
		o.Advance(date(4, 12, 0))
		estimateBefore := o.DeliveryTime()

		newStatus, advanced := o.Advance(date(5, 13, 0))

		assert.False(t, advanced)
		assert.Equal(t, order.Delivered, newStatus)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, estimateBefore, o.DeliveryTime())
	})

	t.Run("never skips a stage", func(t *testing.T) {
		o := newOrder(t)

		visited := []order.Status{o.Status()}
		for {
			s, advanced := o.Advance(date(3, 11, 0))
			if !advanced {
				break
			}
			visited = append(visited, s)
		}

		assert.Equal(t, []order.Status{order.Created, order.Delivery, order.Delivered}, visited)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("fails for directly instantiated struct", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("fails for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
