package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (s *CartStore) ListCarts(ctx context.Context) ([]models.Cart, error) {
	carts := []models.Cart{}
	if err := s.db.WithContext(ctx).Select("id", "description").Order("created_at asc").Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("find carts: %w", err)
	}
	return carts, nil
}

func (s *CartStore) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Preload("Products", orderedItems).First(&cart, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart %s: %w", id, err)
	}
	if cart.Products == nil {
		cart.Products = []models.CartItem{}
	}
	return &cart, nil
}

func (s *CartStore) CreateCart(ctx context.Context, c *models.Cart) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return fmt.Errorf("create cart: %w", err)
		}
		return replaceItems(tx, c)
	})
}

// SaveCart rewrites the cart row and its full item list in one transaction.
func (s *CartStore) SaveCart(ctx context.Context, c *models.Cart) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Cart{ID: c.ID}).
			Omit(clause.Associations).
			Updates(map[string]any{"description": c.Description, "updated_at": gorm.Expr("NOW()")})
		if result.Error != nil {
			return fmt.Errorf("update cart %s: %w", c.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart items: %w", err)
		}
		return replaceItems(tx, c)
	})
}

func replaceItems(tx *gorm.DB, c *models.Cart) error {
	if len(c.Products) == 0 {
		return nil
	}
	items := make([]models.CartItem, len(c.Products))
	for i, it := range c.Products {
		items[i] = models.CartItem{
			CartID:    c.ID,
			Position:  i,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
	}
	if err := tx.Create(&items).Error; err != nil {
		return fmt.Errorf("insert cart items: %w", err)
	}
	return nil
}
