package cache

import (
	"log/slog"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

type Cache struct {
	OrderStatus *OrderStatusCache
}

func NewCache(orderStatuses []entity.OrderStatus) (dependency.Cache, error) {
	oc, err := newOrderStatusCache(orderStatuses)
	if err != nil {
		slog.Default().Error("can't build order status cache",
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	return &Cache{OrderStatus: oc}, nil
}

func (c *Cache) GetOrderStatuses() []entity.OrderStatus {
	return c.OrderStatus.GetOrderStatuses()
}

func (c *Cache) GetOrderStatusByID(id int) (*entity.OrderStatus, bool) {
	return c.OrderStatus.GetOrderStatusByID(id)
}

func (c *Cache) GetOrderStatusByName(name entity.StatusName) (entity.OrderStatus, bool) {
	return c.OrderStatus.GetOrderStatusByName(name)
}
