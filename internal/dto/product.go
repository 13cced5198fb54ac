package dto

import (
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

type Product struct {
	ID          int       `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SupplierID  *int      `json:"supplierId,omitempty"`
	Hidden      bool      `json:"hidden"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ConvertEntityProduct(p *entity.Product) *Product {
	if p == nil {
		return nil
	}
	out := &Product{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.PriceDecimal().String(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Hidden:      p.Hidden,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.SupplierID.Valid {
		id := int(p.SupplierID.Int32)
		out.SupplierID = &id
	}
	return out
}

func ConvertEntityProducts(products []entity.Product) []Product {
	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, *ConvertEntityProduct(&products[i]))
	}
	return out
}
