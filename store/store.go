// Package store defines the persistence contract shared by the file,
// MongoDB and PostgreSQL backends.
package store

import (
	"context"
	"errors"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
)

// ErrNotFound is returned when an identifier does not resolve.
var ErrNotFound = errors.New("record not found")

// Backend names accepted by configuration.
const (
	BackendFile     = "file"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Sort orders by price.
const (
	SortNone = ""
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProductQuery describes a filtered, sorted window over the catalog.
// Limit <= 0 means no limit.
type ProductQuery struct {
	// OnlyAvailable keeps products with stock > 0.
	OnlyAvailable bool
	// Search is matched case-insensitively against category or title.
	Search string
	Sort   string
	Skip   int
	Limit  int
}

type ProductStore interface {
	FindProducts(ctx context.Context, q ProductQuery) ([]models.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// GetProductsByIDs returns the products that exist among ids, in no
	// particular order. Unknown ids are silently skipped.
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CartStore interface {
	ListCarts(ctx context.Context) ([]models.Cart, error)
	GetCart(ctx context.Context, id string) (*models.Cart, error)
	CreateCart(ctx context.Context, c *models.Cart) error
	SaveCart(ctx context.Context, c *models.Cart) error
}

// Stores bundles both stores of one backend together with its cleanup.
type Stores struct {
	Products ProductStore
	Carts    CartStore
	Close    func(ctx context.Context) error
}
