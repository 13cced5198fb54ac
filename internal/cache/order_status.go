package cache

import (
	"fmt"
	"sort"
	"sync"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

// OrderStatusCache holds the status catalog. The catalog is an open set:
// rows come from the order_status table, so no enum validation happens
// here, only uniqueness of names.
type OrderStatusCache struct {
	byID    map[int]entity.OrderStatus
	byName  map[entity.StatusName]entity.OrderStatus
	catalog []entity.OrderStatus
	mu      sync.RWMutex
}

func newOrderStatusCache(orderStatuses []entity.OrderStatus) (*OrderStatusCache, error) {
	c := &OrderStatusCache{
		byID:   make(map[int]entity.OrderStatus, len(orderStatuses)),
		byName: make(map[entity.StatusName]entity.OrderStatus, len(orderStatuses)),
	}

	for _, st := range orderStatuses {
		if st.Name == "" {
			return nil, fmt.Errorf("order status %d has an empty name", st.ID)
		}
		if _, ok := c.byName[st.Name]; ok {
			return nil, fmt.Errorf("duplicate order status name %q", st.Name)
		}
		c.byID[st.ID] = st
		c.byName[st.Name] = st
		c.catalog = append(c.catalog, st)
	}

	sort.Slice(c.catalog, func(i, j int) bool { return c.catalog[i].ID < c.catalog[j].ID })

	return c, nil
}

// GetOrderStatuses returns the catalog in stable id order. The returned
// slice is a copy; callers may not observe later catalog reloads mid-call.
func (c *OrderStatusCache) GetOrderStatuses() []entity.OrderStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	catalog := make([]entity.OrderStatus, len(c.catalog))
	copy(catalog, c.catalog)
	return catalog
}

func (c *OrderStatusCache) GetOrderStatusByID(id int) (*entity.OrderStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st, found := c.byID[id]
	return &st, found
}

func (c *OrderStatusCache) GetOrderStatusByName(name entity.StatusName) (entity.OrderStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st, found := c.byName[name]
	return st, found
}
