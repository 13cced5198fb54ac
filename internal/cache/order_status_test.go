package cache

import (
	"testing"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	statuses := []entity.OrderStatus{
		{ID: 2, Name: entity.Processing, Color: "#3B82F6"},
		{ID: 1, Name: entity.Pending, Color: "#F59E0B"},
		{ID: 3, Name: entity.StatusName("on_hold"), Color: "#999999"},
	}

	c, err := NewCache(statuses)
	require.NoError(t, err)

	// catalog comes back in id order regardless of insert order
	catalog := c.GetOrderStatuses()
	require.Len(t, catalog, 3)
	assert.Equal(t, entity.Pending, catalog[0].Name)
	assert.Equal(t, entity.Processing, catalog[1].Name)

	st, ok := c.GetOrderStatusByID(2)
	require.True(t, ok)
	assert.Equal(t, entity.Processing, st.Name)

	// non-seed names resolve too, the catalog is an open set
	byName, ok := c.GetOrderStatusByName(entity.StatusName("on_hold"))
	require.True(t, ok)
	assert.Equal(t, 3, byName.ID)

	_, ok = c.GetOrderStatusByName(entity.StatusName("refunded"))
	assert.False(t, ok)
}

func TestNewCacheRejectsBadCatalog(t *testing.T) {
	_, err := NewCache([]entity.OrderStatus{{ID: 1, Name: ""}})
	assert.Error(t, err)

	_, err = NewCache([]entity.OrderStatus{
		{ID: 1, Name: entity.Pending},
		{ID: 2, Name: entity.Pending},
	})
	assert.Error(t, err)
}

func TestGetOrderStatusesReturnsCopy(t *testing.T) {
	c, err := NewCache([]entity.OrderStatus{{ID: 1, Name: entity.Pending, Color: "#F59E0B"}})
	require.NoError(t, err)

	first := c.GetOrderStatuses()
	first[0].Color = "mutated"

	second := c.GetOrderStatuses()
	assert.Equal(t, "#F59E0B", second[0].Color)
}
