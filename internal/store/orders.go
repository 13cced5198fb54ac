package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrOrderNotFound is returned when no order matches the requested uuid.
var ErrOrderNotFound = errors.New("order not found")

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing the order interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

// ListOrders returns the full order history as a point-in-time snapshot:
// every order with its items and status history attached, ordered by
// placement time then id so aggregation input is deterministic.
func (os *orderStore) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	var items []entity.OrderItem
	var history []entity.StatusHistoryEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = QueryListNamed[entity.Order](gctx, os.DB(), `
			SELECT id, uuid, order_number, customer_name, franchisee_id,
				total_price, status, tracking_number, placed, modified
			FROM customer_order
			ORDER BY placed, id
		`, map[string]any{})
		if err != nil {
			return fmt.Errorf("can't get orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = QueryListNamed[entity.OrderItem](gctx, os.DB(), `
			SELECT id, order_id, product_id, product_name, quantity, price
			FROM order_item
			ORDER BY order_id, id
		`, map[string]any{})
		if err != nil {
			return fmt.Errorf("can't get order items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = QueryListNamed[entity.StatusHistoryEntry](gctx, os.DB(), `
			SELECT id, order_id, status, changed_at
			FROM order_status_history
			ORDER BY order_id, changed_at, id
		`, map[string]any{})
		if err != nil {
			return fmt.Errorf("can't get order status history: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	itemsByOrder := make(map[int][]entity.OrderItem, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	historyByOrder := make(map[int][]entity.StatusHistoryEntry, len(orders))
	for _, h := range history {
		historyByOrder[h.OrderID] = append(historyByOrder[h.OrderID], h)
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
		orders[i].StatusHistory = historyByOrder[orders[i].ID]
	}

	return orders, nil
}

// ListOrdersPaged returns a page of orders without items or history,
// optionally filtered by status, plus the total row count for the filter.
func (os *orderStore) ListOrdersPaged(ctx context.Context, status entity.StatusName, limit, offset int) ([]entity.Order, int, error) {
	where := ""
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}
	if status != "" {
		where = "WHERE status = :status"
		params["status"] = status.String()
	}

	orders, err := QueryListNamed[entity.Order](ctx, os.DB(), fmt.Sprintf(`
		SELECT id, uuid, order_number, customer_name, franchisee_id,
			total_price, status, tracking_number, placed, modified
		FROM customer_order
		%s
		ORDER BY placed DESC, id DESC
		LIMIT :limit OFFSET :offset
	`, where), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't get orders page: %w", err)
	}

	count, err := QueryCountNamed(ctx, os.DB(),
		fmt.Sprintf("SELECT COUNT(*) FROM customer_order %s", where), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't count orders: %w", err)
	}

	return orders, count, nil
}

func (os *orderStore) GetOrderByUUID(ctx context.Context, orderUUID string) (*entity.Order, error) {
	order, err := QueryNamedOne[entity.Order](ctx, os.DB(), `
		SELECT id, uuid, order_number, customer_name, franchisee_id,
			total_price, status, tracking_number, placed, modified
		FROM customer_order
		WHERE uuid = :uuid
	`, map[string]any{"uuid": orderUUID})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderUUID)
	}

	order.Items, err = QueryListNamed[entity.OrderItem](ctx, os.DB(), `
		SELECT id, order_id, product_id, product_name, quantity, price
		FROM order_item
		WHERE order_id = :orderId
		ORDER BY id
	`, map[string]any{"orderId": order.ID})
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}

	order.StatusHistory, err = QueryListNamed[entity.StatusHistoryEntry](ctx, os.DB(), `
		SELECT id, order_id, status, changed_at
		FROM order_status_history
		WHERE order_id = :orderId
		ORDER BY changed_at, id
	`, map[string]any{"orderId": order.ID})
	if err != nil {
		return nil, fmt.Errorf("can't get order status history: %w", err)
	}

	return &order, nil
}

// CreateOrder inserts the order, its items and the first status history
// row in one transaction. The stored total defaults to the sum of item
// subtotals when the caller passes zero; after creation the total is only
// ever read back, never recomputed.
func (os *orderStore) CreateOrder(ctx context.Context, orderNew *entity.OrderNew) (*entity.Order, error) {
	if len(orderNew.Items) == 0 {
		return nil, fmt.Errorf("order has no items")
	}

	total := orderNew.Total
	if total.IsZero() {
		for _, item := range orderNew.Items {
			total = total.Add(item.Subtotal())
		}
	}

	orderNumber, err := generateOrderNumber()
	if err != nil {
		return nil, fmt.Errorf("can't generate order number: %w", err)
	}

	order := &entity.Order{
		UUID:         uuid.New().String(),
		OrderNumber:  orderNumber,
		CustomerName: orderNew.CustomerName,
		TotalPrice:   total.Round(2),
		Status:       entity.Pending,
	}
	if orderNew.FranchiseeID > 0 {
		order.FranchiseeID.Int32 = int32(orderNew.FranchiseeID)
		order.FranchiseeID.Valid = true
	}

	err = os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		now := rep.Now()
		order.Placed = now
		order.Modified = now

		var franchiseeID any
		if order.FranchiseeID.Valid {
			franchiseeID = order.FranchiseeID.Int32
		}
		orderID, err := ExecNamedLastId(ctx, rep.DB(), `
			INSERT INTO customer_order
				(uuid, order_number, customer_name, franchisee_id, total_price, status, placed, modified)
			VALUES (:uuid, :orderNumber, :customerName, :franchiseeId, :totalPrice, :status, :placed, :modified)
		`, map[string]any{
			"uuid":         order.UUID,
			"orderNumber":  order.OrderNumber,
			"customerName": order.CustomerName,
			"franchiseeId": franchiseeID,
			"totalPrice":   order.TotalPrice,
			"status":       order.Status.String(),
			"placed":       now,
			"modified":     now,
		})
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}
		order.ID = orderID

		rows := make([]map[string]any, 0, len(orderNew.Items))
		for _, item := range orderNew.Items {
			rows = append(rows, map[string]any{
				"order_id":     orderID,
				"product_id":   item.ProductID,
				"product_name": item.ProductName,
				"quantity":     item.Quantity,
				"price":        item.Price,
			})
			order.Items = append(order.Items, entity.OrderItem{
				OrderID:         orderID,
				OrderItemInsert: item,
			})
		}
		if err := BulkInsert(ctx, rep.DB(), "order_item", rows); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}

		err = ExecNamed(ctx, rep.DB(), `
			INSERT INTO order_status_history (order_id, status, changed_at)
			VALUES (:orderId, :status, :changedAt)
		`, map[string]any{
			"orderId":   orderID,
			"status":    order.Status.String(),
			"changedAt": now,
		})
		if err != nil {
			return fmt.Errorf("can't insert status history: %w", err)
		}
		order.StatusHistory = []entity.StatusHistoryEntry{{
			OrderID:   orderID,
			Status:    order.Status,
			ChangedAt: now,
		}}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus sets the order's current status and appends the
// transition to the history, in one transaction.
func (os *orderStore) UpdateOrderStatus(ctx context.Context, orderUUID string, status entity.StatusName) error {
	return os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := QueryNamedOne[entity.Order](ctx, rep.DB(), `
			SELECT id, uuid, status FROM customer_order WHERE uuid = :uuid
		`, map[string]any{"uuid": orderUUID})
		if err != nil {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderUUID)
		}

		now := rep.Now()
		err = ExecNamed(ctx, rep.DB(), `
			UPDATE customer_order SET status = :status, modified = :modified WHERE id = :id
		`, map[string]any{
			"status":   status.String(),
			"modified": now,
			"id":       order.ID,
		})
		if err != nil {
			return fmt.Errorf("can't update order status: %w", err)
		}

		err = ExecNamed(ctx, rep.DB(), `
			INSERT INTO order_status_history (order_id, status, changed_at)
			VALUES (:orderId, :status, :changedAt)
		`, map[string]any{
			"orderId":   order.ID,
			"status":    status.String(),
			"changedAt": now,
		})
		if err != nil {
			return fmt.Errorf("can't append status history: %w", err)
		}

		return nil
	})
}

func (os *orderStore) SetTrackingNumber(ctx context.Context, orderUUID string, trackingNumber string) error {
	return os.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		order, err := QueryNamedOne[entity.Order](ctx, rep.DB(), `
			SELECT id, uuid, status FROM customer_order WHERE uuid = :uuid
		`, map[string]any{"uuid": orderUUID})
		if err != nil {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderUUID)
		}

		err = ExecNamed(ctx, rep.DB(), `
			UPDATE customer_order
			SET tracking_number = :trackingNumber, modified = :modified
			WHERE id = :id
		`, map[string]any{
			"trackingNumber": trackingNumber,
			"modified":       rep.Now(),
			"id":             order.ID,
		})
		if err != nil {
			return fmt.Errorf("can't set tracking number: %w", err)
		}

		return nil
	})
}

func generateOrderNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("QC-%06d", n.Int64()), nil
}
