package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartStore struct {
	coll *mongo.Collection
}

func NewCartStore(coll *mongo.Collection) *CartStore {
	return &CartStore{coll: coll}
}

// ListCarts only loads id and description.
func (s *CartStore) ListCarts(ctx context.Context) ([]models.Cart, error) {
	opts := options.Find().SetProjection(bson.M{"description": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find carts: %w", err)
	}
	carts := []models.Cart{}
	if err := cur.All(ctx, &carts); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}
	return carts, nil
}

func (s *CartStore) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	var c models.Cart
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart %s: %w", id, err)
	}
	if c.Products == nil {
		c.Products = []models.CartItem{}
	}
	return &c, nil
}

func (s *CartStore) CreateCart(ctx context.Context, c *models.Cart) error {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if c.Products == nil {
		c.Products = []models.CartItem{}
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if _, err := s.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

func (s *CartStore) SaveCart(ctx context.Context, c *models.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("replace cart %s: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
