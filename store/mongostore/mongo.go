// Package mongostore persists products and carts as MongoDB documents.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProductsCollection = "products"
	CartsCollection    = "carts"
)

// Connect dials uri, verifies the server answers and returns stores bound to
// the database name db.
func Connect(ctx context.Context, uri, db string) (*store.Stores, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	database := client.Database(db)
	return &store.Stores{
		Products: NewProductStore(database.Collection(ProductsCollection)),
		Carts:    NewCartStore(database.Collection(CartsCollection)),
		Close:    client.Disconnect,
	}, nil
}
