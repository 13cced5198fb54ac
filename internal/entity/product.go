package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ProductNew is the payload for creating or updating a product.
type ProductNew struct {
	SKU         string          `valid:"required"`
	Name        string          `valid:"required"`
	Description string          `valid:"-"`
	Category    string          `valid:"required"`
	Price       decimal.Decimal `valid:"-"`
	Stock       int             `valid:"-"`
	ImageURL    string          `valid:"url,optional"`
	SupplierID  int             `valid:"-"`
}

// Product represents the product table.
type Product struct {
	ID          int             `db:"id"`
	SKU         string          `db:"sku"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	ImageURL    string          `db:"image_url"`
	SupplierID  sql.NullInt32   `db:"supplier_id"`
	Hidden      bool            `db:"hidden"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (p *Product) PriceDecimal() decimal.Decimal {
	return p.Price.Round(2)
}
