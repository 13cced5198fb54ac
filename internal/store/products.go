package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

var ErrProductNotFound = errors.New("product not found")

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing the product interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

func (ps *productStore) AddProduct(ctx context.Context, prd *entity.ProductNew) (int, error) {
	id, err := ExecNamedLastId(ctx, ps.DB(), `
		INSERT INTO product
			(sku, name, description, category, price, stock, image_url, supplier_id, hidden)
		VALUES (:sku, :name, :description, :category, :price, :stock, :imageUrl, :supplierId, false)
	`, map[string]any{
		"sku":         prd.SKU,
		"name":        prd.Name,
		"description": prd.Description,
		"category":    prd.Category,
		"price":       prd.Price,
		"stock":       prd.Stock,
		"imageUrl":    prd.ImageURL,
		"supplierId":  nullableID(prd.SupplierID),
	})
	if err != nil {
		return 0, fmt.Errorf("can't add product: %w", err)
	}
	return id, nil
}

func (ps *productStore) UpdateProduct(ctx context.Context, prd *entity.ProductNew, id int) error {
	err := ExecNamed(ctx, ps.DB(), `
		UPDATE product
		SET sku = :sku,
			name = :name,
			description = :description,
			category = :category,
			price = :price,
			stock = :stock,
			image_url = :imageUrl,
			supplier_id = :supplierId
		WHERE id = :id
	`, map[string]any{
		"sku":         prd.SKU,
		"name":        prd.Name,
		"description": prd.Description,
		"category":    prd.Category,
		"price":       prd.Price,
		"stock":       prd.Stock,
		"imageUrl":    prd.ImageURL,
		"supplierId":  nullableID(prd.SupplierID),
		"id":          id,
	})
	if err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}
	return nil
}

func (ps *productStore) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := QueryNamedOne[entity.Product](ctx, ps.DB(), `
		SELECT id, sku, name, description, category, price, stock,
			image_url, supplier_id, hidden, created_at, updated_at
		FROM product
		WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return &product, nil
}

func (ps *productStore) GetProductsPaged(ctx context.Context, limit, offset int, showHidden bool) ([]entity.Product, int, error) {
	where := "WHERE hidden = false"
	if showHidden {
		where = ""
	}
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	products, err := QueryListNamed[entity.Product](ctx, ps.DB(), fmt.Sprintf(`
		SELECT id, sku, name, description, category, price, stock,
			image_url, supplier_id, hidden, created_at, updated_at
		FROM product
		%s
		ORDER BY id
		LIMIT :limit OFFSET :offset
	`, where), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't get products page: %w", err)
	}

	count, err := QueryCountNamed(ctx, ps.DB(),
		fmt.Sprintf("SELECT COUNT(*) FROM product %s", where), params)
	if err != nil {
		return nil, 0, fmt.Errorf("can't count products: %w", err)
	}

	return products, count, nil
}

// DeleteProductByID hides the product rather than removing the row, so
// order items created before the deletion keep their product reference.
func (ps *productStore) DeleteProductByID(ctx context.Context, id int) error {
	err := ExecNamed(ctx, ps.DB(), `
		UPDATE product SET hidden = true WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete product: %w", err)
	}
	return nil
}

func nullableID(id int) any {
	if id > 0 {
		return id
	}
	return nil
}
