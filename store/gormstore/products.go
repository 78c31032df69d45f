package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *ProductStore) FindProducts(ctx context.Context, q store.ProductQuery) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if q.OnlyAvailable {
		query = query.Where("stock > ?", 0)
	}
	if q.Search != "" {
		likePattern := "%" + likeEscaper.Replace(q.Search) + "%"
		query = query.Where("category ILIKE ? OR title ILIKE ?", likePattern, likePattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	switch q.Sort {
	case store.SortAsc:
		query = query.Order("price asc")
	case store.SortDesc:
		query = query.Order("price desc")
	default:
		query = query.Order("created_at asc")
	}
	if q.Skip > 0 {
		query = query.Offset(q.Skip)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	return products, total, nil
}

func (s *ProductStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

func (s *ProductStore) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find products by id: %w", err)
	}
	return products, nil
}

func (s *ProductStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *ProductStore) SaveProduct(ctx context.Context, p *models.Product) error {
	result := s.db.WithContext(ctx).
		Model(&models.Product{ID: p.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(p)
	if result.Error != nil {
		return fmt.Errorf("update product %s: %w", p.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete product %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
