package entity

import "time"

// FranchiseeNew is the payload for creating or updating a franchisee.
type FranchiseeNew struct {
	Name    string `valid:"required"`
	Email   string `valid:"email"`
	Phone   string `valid:"-"`
	Address string `valid:"-"`
	City    string `valid:"-"`
}

// Franchisee represents the franchisee table. Orders reference a
// franchisee optionally; walk-in orders carry no franchisee id.
type Franchisee struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
