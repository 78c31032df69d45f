// Package catalog implements product CRUD, filtered listing and pagination
// over a store.ProductStore, announcing every change on a Notifier.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1
	MaxLimit     = 1000

	// QueryAvailable is the reserved query value that filters to stock > 0.
	QueryAvailable = "available"
)

type Service struct {
	products store.ProductStore
	notifier services.Notifier
}

func NewService(products store.ProductStore, notifier services.Notifier) *Service {
	if notifier == nil {
		notifier = services.NopNotifier{}
	}
	return &Service{products: products, notifier: notifier}
}

// ProductInput carries the writable product fields. Nil means "not sent";
// Create requires the core fields, Update merges whatever is non-nil.
type ProductInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Code        *string  `json:"code"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
	Status      *bool    `json:"status"`
}

type ListParams struct {
	Limit int
	Page  int
	Sort  string
	Query string
}

func (p ListParams) normalized() ListParams {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	p.Sort = strings.ToLower(strings.TrimSpace(p.Sort))
	if p.Sort != store.SortAsc && p.Sort != store.SortDesc {
		p.Sort = store.SortNone
	}
	p.Query = strings.TrimSpace(p.Query)
	return p
}

func (p ListParams) storeQuery() store.ProductQuery {
	q := store.ProductQuery{
		Sort:  p.Sort,
		Skip:  math.MaxInt,
		Limit: p.Limit,
	}
	// pages past the addressable range stay empty instead of wrapping
	if p.Page-1 <= math.MaxInt/p.Limit {
		q.Skip = (p.Page - 1) * p.Limit
	}
	switch {
	case p.Query == "":
	case strings.EqualFold(p.Query, QueryAvailable):
		q.OnlyAvailable = true
	default:
		q.Search = p.Query
	}
	return q
}

func pageLink(page int, p ListParams) *string {
	link := fmt.Sprintf("/api/products?page=%d&limit=%d&sort=%s&query=%s",
		page, p.Limit, url.QueryEscape(p.Sort), url.QueryEscape(p.Query))
	return &link
}

// List returns one page of products matching params.
func (s *Service) List(ctx context.Context, params ListParams) (*models.ProductPage, error) {
	p := params.normalized()

	products, total, err := s.products.FindProducts(ctx, p.storeQuery())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	page := &models.ProductPage{
		Status:      "success",
		Payload:     products,
		TotalPages:  totalPages,
		Page:        p.Page,
		HasPrevPage: p.Page > 1,
		HasNextPage: p.Page < totalPages,
	}
	if page.HasPrevPage {
		prev := p.Page - 1
		page.PrevPage = &prev
		page.PrevLink = pageLink(prev, p)
	}
	if page.HasNextPage {
		next := p.Page + 1
		page.NextPage = &next
		page.NextLink = pageLink(next, p)
	}
	return page, nil
}

// All returns the whole catalog in store order.
func (s *Service) All(ctx context.Context) ([]models.Product, error) {
	products, _, err := s.products.FindProducts(ctx, store.ProductQuery{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}
	return product, nil
}

// Create validates in, stores a new product and publishes EventProductsCreated.
func (s *Service) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validateNew(in); err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:       strings.TrimSpace(*in.Title),
		Description: strings.TrimSpace(*in.Description),
		Code:        strings.TrimSpace(*in.Code),
		Price:       *in.Price,
		Stock:       *in.Stock,
		Category:    strings.TrimSpace(*in.Category),
		Thumbnails:  in.Thumbnails,
		Status:      true,
	}
	if product.Thumbnails == nil {
		product.Thumbnails = []string{}
	}
	if in.Status != nil {
		product.Status = *in.Status
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.notifier.Publish(services.EventProductsCreated)
	return product, nil
}

// Update merges the non-nil fields of in into product id. The identifier
// itself can never change.
func (s *Service) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := validatePatch(in); err != nil {
		return nil, err
	}

	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		return nil, lookupErr(err, id)
	}

	apply(product, in)

	if err := s.products.SaveProduct(ctx, product); err != nil {
		return nil, lookupErr(err, id)
	}
	s.notifier.Publish(services.EventProductUpdated)
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return lookupErr(err, id)
	}
	s.notifier.Publish(services.EventProductDeleted)
	return nil
}

func apply(product *models.Product, in ProductInput) {
	if in.Title != nil {
		product.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Code != nil {
		product.Code = strings.TrimSpace(*in.Code)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Thumbnails != nil {
		product.Thumbnails = in.Thumbnails
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func validateNew(in ProductInput) error {
	var missing []string
	if blank(in.Title) {
		missing = append(missing, "title")
	}
	if blank(in.Description) {
		missing = append(missing, "description")
	}
	if blank(in.Code) {
		missing = append(missing, "code")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Stock == nil {
		missing = append(missing, "stock")
	}
	if blank(in.Category) {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return services.Invalid("missing required fields: %s", strings.Join(missing, ", "))
	}
	return validatePatch(in)
}

func validatePatch(in ProductInput) error {
	if in.Price != nil && *in.Price < 0 {
		return services.Invalid("price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return services.Invalid("stock must not be negative")
	}
	for _, f := range []struct {
		name string
		v    *string
	}{{"title", in.Title}, {"description", in.Description}, {"code", in.Code}, {"category", in.Category}} {
		if f.v != nil && strings.TrimSpace(*f.v) == "" {
			return services.Invalid("%s must not be empty", f.name)
		}
	}
	return nil
}

func lookupErr(err error, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.NotFound("product " + id)
	}
	return fmt.Errorf("product %s: %w", id, err)
}
