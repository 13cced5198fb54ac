package entity

// StatusName is a stable key for an order status. The status catalog is an
// open set configured in the database, so StatusName is an opaque string
// rather than an enum; display labels and colors live in OrderStatus.
type StatusName string

func (sn StatusName) String() string {
	return string(sn)
}

// Statuses seeded by the initial migration. Nothing outside the seed data
// depends on this list being exhaustive.
const (
	Pending    StatusName = "pending"
	Processing StatusName = "processing"
	Shipped    StatusName = "shipped"
	InTransit  StatusName = "in_transit"
	Delivered  StatusName = "delivered"
	Cancelled  StatusName = "cancelled"
)

// OrderStatus represents the order_status table: one catalog entry with a
// display color passed through to dashboard buckets.
type OrderStatus struct {
	ID    int        `db:"id"`
	Name  StatusName `db:"name"`
	Color string     `db:"color"`
}
