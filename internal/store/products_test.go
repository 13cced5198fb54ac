package store

import (
	"context"
	"testing"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	supID, err := db.Suppliers().AddSupplier(ctx, &entity.SupplierNew{
		Name:    "Roastery North",
		Email:   "orders@roastery.example.com",
		Country: "US",
	})
	require.NoError(t, err)

	prd := &entity.ProductNew{
		SKU:        "QC-ESP-001",
		Name:       "Espresso Blend",
		Category:   "beans",
		Price:      decimal.RequireFromString("12.50"),
		Stock:      40,
		SupplierID: supID,
	}
	id, err := db.Products().AddProduct(ctx, prd)
	require.NoError(t, err)

	// duplicate sku
	_, err = db.Products().AddProduct(ctx, prd)
	require.Error(t, err)
	assert.True(t, db.IsErrUniqueViolation(err))

	got, err := db.Products().GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Espresso Blend", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, got.SupplierID.Valid)
	assert.Equal(t, int32(supID), got.SupplierID.Int32)

	prd.Stock = 25
	require.NoError(t, db.Products().UpdateProduct(ctx, prd, id))
	got, err = db.Products().GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Stock)

	// delete hides, row stays
	require.NoError(t, db.Products().DeleteProductByID(ctx, id))
	got, err = db.Products().GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Hidden)

	visible, total, err := db.Products().GetProductsPaged(ctx, 10, 0, false)
	require.NoError(t, err)
	assert.Empty(t, visible)
	assert.Equal(t, 0, total)

	all, total, err := db.Products().GetProductsPaged(ctx, 10, 0, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 1, total)
}

func TestStatusCatalogSeed(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	statuses, err := db.Statuses().ListOrderStatuses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, statuses)

	names := make(map[entity.StatusName]bool, len(statuses))
	for _, st := range statuses {
		names[st.Name] = true
		assert.NotEmpty(t, st.Color)
	}
	assert.True(t, names[entity.Pending])
	assert.True(t, names[entity.Delivered])
	assert.True(t, names[entity.Cancelled])
}
