package orderrepo

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDomain_DuplicateProductLines_SumIntoOneRow(t *testing.T) {
	productID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	first, err := order.NewItem(productID, 3)
	require.NoError(t, err)
	second, err := order.NewItem(otherID, 1)
	require.NoError(t, err)
	third, err := order.NewItem(productID, 2)
	require.NoError(t, err)

	createdAt := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{first, second, third}, createdAt)
	require.NoError(t, err)

	dto := fromDomain(aggregate)

	require.Len(t, dto.Items, 2)
	assert.Equal(t, productID.Bytes(), dto.Items[0].ProductID)
	assert.Equal(t, 5, dto.Items[0].Quantity)
	assert.Equal(t, otherID.Bytes(), dto.Items[1].ProductID)
	assert.Equal(t, 1, dto.Items[1].Quantity)
}

func TestFromDomain_DistinctProducts_KeepOneRowEach(t *testing.T) {
	first, err := order.NewItem(kernel.NewUUID(), 3)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), 2)
	require.NoError(t, err)

	createdAt := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{first, second}, createdAt)
	require.NoError(t, err)

	dto := fromDomain(aggregate)

	require.Len(t, dto.Items, 2)
	assert.Equal(t, 3, dto.Items[0].Quantity)
	assert.Equal(t, 2, dto.Items[1].Quantity)
}
