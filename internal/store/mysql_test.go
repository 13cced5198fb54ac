package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestDB connects to the database named by MYSQL_TEST_DSN and wipes the
// order tables. Tests are skipped when the variable is not set.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	assert.NoError(t, err)

	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 0")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM order_status_history")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM order_item")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM customer_order")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM product")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM franchisee")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM supplier")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM admin")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 1")
	assert.NoError(t, err)

	return db
}
