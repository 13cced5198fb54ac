package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type supplierStore struct {
	*MYSQLStore
}

// Suppliers returns an object implementing the supplier interface
func (ms *MYSQLStore) Suppliers() dependency.Suppliers {
	return &supplierStore{
		MYSQLStore: ms,
	}
}

func (ss *supplierStore) AddSupplier(ctx context.Context, sup *entity.SupplierNew) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO supplier (name, contact_name, email, phone, city, country)
		VALUES (:name, :contactName, :email, :phone, :city, :country)
	`, map[string]any{
		"name":        sup.Name,
		"contactName": sup.ContactName,
		"email":       sup.Email,
		"phone":       sup.Phone,
		"city":        sup.City,
		"country":     sup.Country,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add supplier: %w", err)
	}
	return id, nil
}

func (ss *supplierStore) UpdateSupplier(ctx context.Context, sup *entity.SupplierNew, id int) error {
	err := ExecNamed(ctx, ss.DB(), `
		UPDATE supplier
		SET name = :name,
			contact_name = :contactName,
			email = :email,
			phone = :phone,
			city = :city,
			country = :country
		WHERE id = :id
	`, map[string]any{
		"name":        sup.Name,
		"contactName": sup.ContactName,
		"email":       sup.Email,
		"phone":       sup.Phone,
		"city":        sup.City,
		"country":     sup.Country,
		"id":          id,
	})
	if err != nil {
		return fmt.Errorf("can't update supplier: %w", err)
	}
	return nil
}

func (ss *supplierStore) GetSupplierByID(ctx context.Context, id int) (*entity.Supplier, error) {
	supplier, err := QueryNamedOne[entity.Supplier](ctx, ss.DB(), `
		SELECT id, name, contact_name, email, phone, city, country, created_at, updated_at
		FROM supplier
		WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrSupplierNotFound, id)
	}
	return &supplier, nil
}

func (ss *supplierStore) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	suppliers, err := QueryListNamed[entity.Supplier](ctx, ss.DB(), `
		SELECT id, name, contact_name, email, phone, city, country, created_at, updated_at
		FROM supplier
		ORDER BY name, id
	`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get suppliers: %w", err)
	}
	return suppliers, nil
}

func (ss *supplierStore) DeleteSupplierByID(ctx context.Context, id int) error {
	err := ExecNamed(ctx, ss.DB(), `
		DELETE FROM supplier WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete supplier: %w", err)
	}
	return nil
}
