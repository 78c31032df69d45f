package filestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

type CartStore struct {
	file *jsonFile
}

func NewCartStore(path string) *CartStore {
	return &CartStore{file: &jsonFile{path: path}}
}

func (s *CartStore) readAll() ([]models.Cart, error) {
	var carts []models.Cart
	if err := s.file.load(&carts); err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].Products == nil {
			carts[i].Products = []models.CartItem{}
		}
	}
	return carts, nil
}

func (s *CartStore) ListCarts(_ context.Context) ([]models.Cart, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()
	return s.readAll()
}

func (s *CartStore) GetCart(_ context.Context, id string) (*models.Cart, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	carts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].ID == id {
			return &carts[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *CartStore) CreateCart(_ context.Context, c *models.Cart) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	carts, err := s.readAll()
	if err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Products == nil {
		c.Products = []models.CartItem{}
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	carts = append(carts, *c)
	return s.file.store(carts)
}

func (s *CartStore) SaveCart(_ context.Context, c *models.Cart) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	carts, err := s.readAll()
	if err != nil {
		return err
	}
	for i := range carts {
		if carts[i].ID == c.ID {
			c.UpdatedAt = time.Now().UTC()
			carts[i] = *c
			return s.file.store(carts)
		}
	}
	return store.ErrNotFound
}
