package gormstore

import (
	"context"
	"os"
	"testing"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// open needs a scratch PostgreSQL database; set TEST_DATABASE_URL to run.
// Tables are emptied before each test.
func open(t *testing.T) *store.Stores {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	stores, err := Open(dsn)
	require.NoError(t, err)

	db := stores.Products.(*ProductStore).db
	require.NoError(t, db.Exec("DELETE FROM cart_items").Error)
	require.NoError(t, db.Exec("DELETE FROM carts").Error)
	require.NoError(t, db.Exec("DELETE FROM products").Error)

	t.Cleanup(func() { _ = stores.Close(context.Background()) })
	return stores
}

func TestPostgresProducts(t *testing.T) {
	stores := open(t)
	ctx := context.Background()

	for _, p := range []models.Product{
		{Title: "Pen", Category: "office", Price: 1.5, Stock: 10, Thumbnails: []string{"a.png"}},
		{Title: "Laptop", Category: "electronics", Price: 999, Stock: 0},
		{Title: "100% Notebook", Category: "office", Price: 3, Stock: 4},
	} {
		p := p
		require.NoError(t, stores.Products.CreateProduct(ctx, &p))
	}

	got, total, err := stores.Products.FindProducts(ctx, store.ProductQuery{OnlyAvailable: true, Sort: store.SortAsc})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "Pen", got[0].Title)
	assert.Equal(t, []string{"a.png"}, got[0].Thumbnails)

	got, total, err = stores.Products.FindProducts(ctx, store.ProductQuery{Search: "100%"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)

	p := got[0]
	p.Stock = 0
	require.NoError(t, stores.Products.SaveProduct(ctx, &p))
	reloaded, err := stores.Products.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Stock)

	require.NoError(t, stores.Products.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, stores.Products.DeleteProduct(ctx, p.ID), store.ErrNotFound)
	assert.ErrorIs(t, stores.Products.SaveProduct(ctx, &p), store.ErrNotFound)
}

func TestPostgresCartsKeepOrder(t *testing.T) {
	stores := open(t)
	ctx := context.Background()

	c := &models.Cart{Description: "weekend"}
	require.NoError(t, stores.Carts.CreateCart(ctx, c))

	c.Products = []models.CartItem{{ProductID: "p2", Quantity: 1}, {ProductID: "p1", Quantity: 3}}
	require.NoError(t, stores.Carts.SaveCart(ctx, c))

	got, err := stores.Carts.GetCart(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p2", got.Products[0].ProductID)
	assert.Equal(t, 3, got.Products[1].Quantity)

	c.Products = nil
	require.NoError(t, stores.Carts.SaveCart(ctx, c))
	got, err = stores.Carts.GetCart(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Products)

	_, err = stores.Carts.GetCart(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
