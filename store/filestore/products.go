package filestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

type ProductStore struct {
	file *jsonFile
}

func NewProductStore(path string) *ProductStore {
	return &ProductStore{file: &jsonFile{path: path}}
}

func (s *ProductStore) readAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.file.load(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) FindProducts(_ context.Context, q store.ProductQuery) ([]models.Product, int64, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return nil, 0, err
	}
	page, total := q.Apply(products)
	return page, total, nil
}

func (s *ProductStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ProductStore) GetProductsByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	found := make([]models.Product, 0, len(ids))
	for _, p := range products {
		if _, ok := wanted[p.ID]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (s *ProductStore) CreateProduct(_ context.Context, p *models.Product) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	products = append(products, *p)
	return s.file.store(products)
}

func (s *ProductStore) SaveProduct(_ context.Context, p *models.Product) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			products[i] = *p
			return s.file.store(products)
		}
	}
	return store.ErrNotFound
}

func (s *ProductStore) DeleteProduct(_ context.Context, id string) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	products, err := s.readAll()
	if err != nil {
		return err
	}
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return store.ErrNotFound
	}
	return s.file.store(kept)
}
