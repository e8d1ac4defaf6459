package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("walks the pipeline one step at a time", func(t *testing.T) {
		next, advanced := order.Created.Next()
		assert.True(t, advanced)
		assert.Equal(t, order.Delivery, next)

		next, advanced = order.Delivery.Next()
		assert.True(t, advanced)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("terminal status does not advance", func(t *testing.T) {
		next, advanced := order.Delivered.Next()

		assert.False(t, advanced)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("repeated advancement visits exactly Created, Delivery, Delivered", func(t *testing.T) {
		visited := []order.Status{order.Created}
		s := order.Created
		for {
			next, advanced := s.Next()
			if !advanced {
				break
			}
			visited = append(visited, next)
			s = next
		}

		assert.Equal(t, []order.Status{order.Created, order.Delivery, order.Delivered}, visited)
	})

	t.Run("unknown status does not advance", func(t *testing.T) {
		next, advanced := order.Unknown.Next()

		assert.False(t, advanced)
		assert.Equal(t, order.Unknown, next)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Delivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestStatus_LeadDays(t *testing.T) {
	assert.Equal(t, 2, order.Created.LeadDays())
	assert.Equal(t, 1, order.Delivery.LeadDays())
	assert.Equal(t, 0, order.Delivered.LeadDays())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Created, order.Delivery, order.Delivered} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Delivery", order.Delivery.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}
