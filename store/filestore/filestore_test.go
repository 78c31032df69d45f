package filestore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"github.com/junaidrashid-git/ecommerce-realtime/store/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stores, err := filestore.Open(dir)
	require.NoError(t, err)
	products := stores.Products

	pen := &models.Product{Title: "Pen", Description: "Blue pen", Code: "P1", Price: 1.5, Stock: 10, Category: "office", Status: true}
	require.NoError(t, products.CreateProduct(ctx, pen))
	require.NotEmpty(t, pen.ID)
	assert.False(t, pen.CreatedAt.IsZero())

	got, err := products.GetProduct(ctx, pen.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Title)

	got.Stock = 3
	require.NoError(t, products.SaveProduct(ctx, got))

	// a second store over the same directory sees the write
	reopened, err := filestore.Open(dir)
	require.NoError(t, err)
	again, err := reopened.Products.GetProduct(ctx, pen.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Stock)

	found, err := products.GetProductsByIDs(ctx, []string{pen.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, products.DeleteProduct(ctx, pen.ID))
	_, err = products.GetProduct(ctx, pen.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, products.DeleteProduct(ctx, pen.ID), store.ErrNotFound)
	assert.ErrorIs(t, products.SaveProduct(ctx, &models.Product{ID: "nope"}), store.ErrNotFound)
}

func TestProductsFileIsJSONArray(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stores, err := filestore.Open(dir)
	require.NoError(t, err)

	require.NoError(t, stores.Products.CreateProduct(ctx, &models.Product{Title: "A", Thumbnails: []string{}}))
	require.NoError(t, stores.Products.CreateProduct(ctx, &models.Product{Title: "B", Thumbnails: []string{}}))

	data, err := os.ReadFile(filepath.Join(dir, filestore.ProductsFile))
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "A", raw[0]["title"])
	assert.Contains(t, raw[0], "id")
}

func TestEmptyFileReadsAsNoRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filestore.CartsFile), nil, 0o644))

	stores, err := filestore.Open(dir)
	require.NoError(t, err)

	carts, err := stores.Carts.ListCarts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, carts)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filestore.ProductsFile), []byte("{not json"), 0o644))

	stores, err := filestore.Open(dir)
	require.NoError(t, err)

	_, _, err = stores.Products.FindProducts(context.Background(), store.ProductQuery{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestCartStore(t *testing.T) {
	ctx := context.Background()
	stores, err := filestore.Open(t.TempDir())
	require.NoError(t, err)
	carts := stores.Carts

	c := &models.Cart{Description: "weekly"}
	require.NoError(t, carts.CreateCart(ctx, c))
	require.NotEmpty(t, c.ID)
	assert.NotNil(t, c.Products)

	c.Products = append(c.Products, models.CartItem{ProductID: "p1", Quantity: 2})
	require.NoError(t, carts.SaveCart(ctx, c))

	got, err := carts.GetCart(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, models.CartItem{ProductID: "p1", Quantity: 2}, got.Products[0])

	list, err := carts.ListCarts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "weekly", list[0].Description)

	_, err = carts.GetCart(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, carts.SaveCart(ctx, &models.Cart{ID: "missing"}), store.ErrNotFound)
}

func TestWritesLeaveNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stores, err := filestore.Open(dir)
	require.NoError(t, err)

	p := &models.Product{Title: "Pen"}
	require.NoError(t, stores.Products.CreateProduct(ctx, p))
	p.Stock = 4
	require.NoError(t, stores.Products.SaveProduct(ctx, p))
	require.NoError(t, stores.Carts.CreateCart(ctx, &models.Cart{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{filestore.ProductsFile, filestore.CartsFile}, names)

	info, err := os.Stat(filepath.Join(dir, filestore.ProductsFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
