package store_test

import (
	"testing"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"github.com/stretchr/testify/assert"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "1", Title: "Blue Pen", Category: "office", Price: 1.5, Stock: 10},
		{ID: "2", Title: "Laptop", Category: "Electronics", Price: 999, Stock: 0},
		{ID: "3", Title: "Notebook", Category: "Office", Price: 3, Stock: 4},
		{ID: "4", Title: "Headphones", Category: "electronics", Price: 50, Stock: 2},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	t.Run("no filter keeps order", func(t *testing.T) {
		got, total := store.ProductQuery{}.Apply(catalogFixture())
		assert.Equal(t, int64(4), total)
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
	})

	t.Run("only available", func(t *testing.T) {
		got, total := store.ProductQuery{OnlyAvailable: true}.Apply(catalogFixture())
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []string{"1", "3", "4"}, ids(got))
	})

	t.Run("search matches category case-insensitively", func(t *testing.T) {
		got, _ := store.ProductQuery{Search: "ELECTRON"}.Apply(catalogFixture())
		assert.Equal(t, []string{"2", "4"}, ids(got))
	})

	t.Run("search matches title", func(t *testing.T) {
		got, _ := store.ProductQuery{Search: "pen"}.Apply(catalogFixture())
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("sort asc and desc by price", func(t *testing.T) {
		asc, _ := store.ProductQuery{Sort: store.SortAsc}.Apply(catalogFixture())
		assert.Equal(t, []string{"1", "3", "4", "2"}, ids(asc))

		desc, _ := store.ProductQuery{Sort: store.SortDesc}.Apply(catalogFixture())
		assert.Equal(t, []string{"2", "4", "3", "1"}, ids(desc))
	})

	t.Run("skip and limit window after filtering", func(t *testing.T) {
		got, total := store.ProductQuery{Sort: store.SortAsc, Skip: 1, Limit: 2}.Apply(catalogFixture())
		assert.Equal(t, int64(4), total)
		assert.Equal(t, []string{"3", "4"}, ids(got))
	})

	t.Run("skip past the end", func(t *testing.T) {
		got, total := store.ProductQuery{Skip: 10, Limit: 5}.Apply(catalogFixture())
		assert.Equal(t, int64(4), total)
		assert.Empty(t, got)
	})
}
