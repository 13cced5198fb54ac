package entity

import "time"

// SupplierNew is the payload for creating or updating a supplier.
type SupplierNew struct {
	Name        string `valid:"required"`
	ContactName string `valid:"-"`
	Email       string `valid:"email"`
	Phone       string `valid:"-"`
	City        string `valid:"-"`
	Country     string `valid:"-"`
}

// Supplier represents the supplier table.
type Supplier struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	ContactName string    `db:"contact_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	City        string    `db:"city"`
	Country     string    `db:"country"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
