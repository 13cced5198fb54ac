package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderNew is the payload for creating an order.
type OrderNew struct {
	CustomerName string            `valid:"required"`
	FranchiseeID int               `valid:"-"`
	Items        []OrderItemInsert `valid:"required"`
	Total        decimal.Decimal   `valid:"-"`
}

// Order represents the customer_order table together with its items and
// status history. Rows are created once and mutated only by appending to
// the history and updating status/tracking_number. total_price is stored
// independently of the item subtotals and is never recomputed.
type Order struct {
	ID             int             `db:"id"`
	UUID           string          `db:"uuid"`
	OrderNumber    string          `db:"order_number"`
	CustomerName   string          `db:"customer_name"`
	FranchiseeID   sql.NullInt32   `db:"franchisee_id"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	Status         StatusName      `db:"status"`
	TrackingNumber sql.NullString  `db:"tracking_number"`
	Placed         time.Time       `db:"placed"`
	Modified       time.Time       `db:"modified"`

	Items         []OrderItem          `db:"-"`
	StatusHistory []StatusHistoryEntry `db:"-"`
}

func (o *Order) TotalPriceDecimal() decimal.Decimal {
	return o.TotalPrice.Round(2)
}

// OrderItem represents the order_item table.
type OrderItem struct {
	ID      int `db:"id"`
	OrderID int `db:"order_id"`
	OrderItemInsert
}

type OrderItemInsert struct {
	ProductID   int             `db:"product_id" valid:"required"`
	ProductName string          `db:"product_name" valid:"required"`
	Quantity    int             `db:"quantity" valid:"required"`
	Price       decimal.Decimal `db:"price" valid:"-"`
}

func (oii *OrderItemInsert) Subtotal() decimal.Decimal {
	return oii.Price.Mul(decimal.NewFromInt(int64(oii.Quantity))).Round(2)
}

// StatusHistoryEntry represents one row of the append-only
// order_status_history table, oldest first. The first entry for an order
// carries the order's original status.
type StatusHistoryEntry struct {
	ID        int        `db:"id"`
	OrderID   int        `db:"order_id"`
	Status    StatusName `db:"status"`
	ChangedAt time.Time  `db:"changed_at"`
}
