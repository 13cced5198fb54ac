package store

import (
	"context"
	"fmt"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

type statusStore struct {
	*MYSQLStore
}

// Statuses returns an object implementing the status catalog interface
func (ms *MYSQLStore) Statuses() dependency.Statuses {
	return &statusStore{
		MYSQLStore: ms,
	}
}

func (ss *statusStore) ListOrderStatuses(ctx context.Context) ([]entity.OrderStatus, error) {
	statuses, err := QueryListNamed[entity.OrderStatus](ctx, ss.DB(), `
		SELECT id, name, color FROM order_status ORDER BY id
	`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get order statuses: %w", err)
	}
	return statuses, nil
}
