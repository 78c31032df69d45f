package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun(t *testing.T) {
	loc := time.UTC

	before := time.Date(2024, 5, 1, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 1, 2, 0, 0, 0, loc), NextRun(before, 2, 0))

	after := time.Date(2024, 5, 1, 3, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 2, 2, 0, 0, 0, loc), NextRun(after, 2, 0))

	exact := time.Date(2024, 5, 1, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 2, 2, 0, 0, 0, loc), NextRun(exact, 2, 0))
}

func TestSnapshotCopiesTree(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "products.json"), []byte(`[{"id":"1"}]`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "carts.json"), []byte(`[]`), 0o644))

	dst := t.TempDir()
	at := time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	dest, err := Snapshot(src, dst, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "2024-05-01_02-00-00"), dest)

	data, err := os.ReadFile(filepath.Join(dest, "products.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	data, err = os.ReadFile(filepath.Join(dest, "nested", "carts.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestSnapshotMissingSource(t *testing.T) {
	_, err := Snapshot(filepath.Join(t.TempDir(), "nope"), t.TempDir(), time.Now())
	assert.Error(t, err)
}

func TestSnapshotSkipsInFlightFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "products.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".products.json.123"), []byte(`[{"id":`), 0o644))

	dest, err := Snapshot(src, t.TempDir(), time.Now())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, "products.json"))
	assert.NoFileExists(t, filepath.Join(dest, ".products.json.123"))
	assert.NoDirExists(t, dest+".partial")
}

func TestSnapshotWhileStoreWrites(t *testing.T) {
	ctx := context.Background()
	src := t.TempDir()
	stores, err := filestore.Open(src)
	require.NoError(t, err)

	pen := &models.Product{Title: "Pen", Description: strings.Repeat("x", 20_000), Code: "P1", Category: "office"}
	require.NoError(t, stores.Products.CreateProduct(ctx, pen))

	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		for i := 0; ; i++ {
			select {
			case <-stop:
				done <- nil
				return
			default:
			}
			pen.Stock = i
			if err := stores.Products.SaveProduct(ctx, pen); err != nil {
				done <- err
				return
			}
		}
	}()

	dst := t.TempDir()
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		dest, err := Snapshot(src, dst, start.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dest, filestore.ProductsFile))
		require.NoError(t, err)
		var products []models.Product
		require.NoError(t, json.Unmarshal(data, &products), "snapshot %d holds a torn products file", i)
		require.Len(t, products, 1)
	}

	close(stop)
	require.NoError(t, <-done)
}

func TestCleanupRemovesExpiredSnapshots(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 10, 2, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, now.Add(-5*24*time.Hour).Format(stampLayout))
	fresh := filepath.Join(dir, now.Add(-24*time.Hour).Format(stampLayout))
	unrelated := filepath.Join(dir, "keep-me")
	for _, d := range []string{old, fresh, unrelated} {
		require.NoError(t, os.Mkdir(d, 0o755))
	}
	stale := now.Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(unrelated, stale, stale))

	removed := Cleanup(dir, 4*24*time.Hour, now)

	assert.Equal(t, []string{old}, removed)
	assert.NoDirExists(t, old)
	assert.DirExists(t, fresh)
	assert.DirExists(t, unrelated)
}
