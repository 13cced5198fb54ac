package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

var ErrFranchiseeNotFound = errors.New("franchisee not found")

type franchiseeStore struct {
	*MYSQLStore
}

// Franchisees returns an object implementing the franchisee interface
func (ms *MYSQLStore) Franchisees() dependency.Franchisees {
	return &franchiseeStore{
		MYSQLStore: ms,
	}
}

func (fs *franchiseeStore) AddFranchisee(ctx context.Context, fr *entity.FranchiseeNew) (int, error) {
	id, err := ExecNamedLastId(ctx, fs.DB(), `
		INSERT INTO franchisee (name, email, phone, address, city)
		VALUES (:name, :email, :phone, :address, :city)
	`, map[string]any{
		"name":    fr.Name,
		"email":   fr.Email,
		"phone":   fr.Phone,
		"address": fr.Address,
		"city":    fr.City,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add franchisee: %w", err)
	}
	return id, nil
}

func (fs *franchiseeStore) UpdateFranchisee(ctx context.Context, fr *entity.FranchiseeNew, id int) error {
	err := ExecNamed(ctx, fs.DB(), `
		UPDATE franchisee
		SET name = :name,
			email = :email,
			phone = :phone,
			address = :address,
			city = :city
		WHERE id = :id
	`, map[string]any{
		"name":    fr.Name,
		"email":   fr.Email,
		"phone":   fr.Phone,
		"address": fr.Address,
		"city":    fr.City,
		"id":      id,
	})
	if err != nil {
		return fmt.Errorf("can't update franchisee: %w", err)
	}
	return nil
}

func (fs *franchiseeStore) GetFranchiseeByID(ctx context.Context, id int) (*entity.Franchisee, error) {
	franchisee, err := QueryNamedOne[entity.Franchisee](ctx, fs.DB(), `
		SELECT id, name, email, phone, address, city, created_at, updated_at
		FROM franchisee
		WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrFranchiseeNotFound, id)
	}
	return &franchisee, nil
}

func (fs *franchiseeStore) ListFranchisees(ctx context.Context) ([]entity.Franchisee, error) {
	franchisees, err := QueryListNamed[entity.Franchisee](ctx, fs.DB(), `
		SELECT id, name, email, phone, address, city, created_at, updated_at
		FROM franchisee
		ORDER BY name, id
	`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get franchisees: %w", err)
	}
	return franchisees, nil
}

// DeleteFranchiseeByID removes the franchisee. Orders keep their stored
// franchisee id; the foreign key sets it to NULL so the order history and
// its revenue stay intact.
func (fs *franchiseeStore) DeleteFranchiseeByID(ctx context.Context, id int) error {
	err := ExecNamed(ctx, fs.DB(), `
		DELETE FROM franchisee WHERE id = :id
	`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete franchisee: %w", err)
	}
	return nil
}
