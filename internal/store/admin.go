package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

var ErrAdminNotFound = errors.New("admin not found")

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing the admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

func (as *adminStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	err := ExecNamed(ctx, as.DB(), `
		INSERT INTO admin (username, password_hash)
		VALUES (:username, :passwordHash)
	`, map[string]any{
		"username":     un,
		"passwordHash": pwHash,
	})
	if err != nil {
		return fmt.Errorf("can't add admin: %w", err)
	}
	return nil
}

func (as *adminStore) DeleteAdmin(ctx context.Context, username string) error {
	err := ExecNamed(ctx, as.DB(), `
		DELETE FROM admin WHERE username = :username
	`, map[string]any{"username": username})
	if err != nil {
		return fmt.Errorf("can't delete admin: %w", err)
	}
	return nil
}

func (as *adminStore) ChangePassword(ctx context.Context, un, newHash string) error {
	err := ExecNamed(ctx, as.DB(), `
		UPDATE admin SET password_hash = :passwordHash WHERE username = :username
	`, map[string]any{
		"username":     un,
		"passwordHash": newHash,
	})
	if err != nil {
		return fmt.Errorf("can't change password: %w", err)
	}
	return nil
}

func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	admin, err := as.GetAdminByUsername(ctx, un)
	if err != nil {
		return "", err
	}
	return admin.PasswordHash, nil
}

func (as *adminStore) GetAdminByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	admin, err := QueryNamedOne[entity.Admin](ctx, as.DB(), `
		SELECT id, username, password_hash, created_at
		FROM admin
		WHERE username = :username
	`, map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAdminNotFound, username)
	}
	return &admin, nil
}
