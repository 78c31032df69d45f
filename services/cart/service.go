// Package cart implements cart membership operations. Each mutation is one
// read-modify-write of the cart followed by a single EventCartUpdated.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

const DefaultQuantity = 1

type Service struct {
	carts    store.CartStore
	products store.ProductStore
	notifier services.Notifier
}

func NewService(carts store.CartStore, products store.ProductStore, notifier services.Notifier) *Service {
	if notifier == nil {
		notifier = services.NopNotifier{}
	}
	return &Service{carts: carts, products: products, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, description string) (*models.Cart, error) {
	c := &models.Cart{
		Description: strings.TrimSpace(description),
		Products:    []models.CartItem{},
	}
	if err := s.carts.CreateCart(ctx, c); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	s.notifier.Publish(services.EventCartUpdated)
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]models.CartSummary, error) {
	carts, err := s.carts.ListCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	summaries := make([]models.CartSummary, 0, len(carts))
	for _, c := range carts {
		summaries = append(summaries, models.CartSummary{ID: c.ID, Description: c.Description})
	}
	return summaries, nil
}

// Get returns the cart with every entry's product resolved. Entries whose
// product has since been deleted keep a nil Product.
func (s *Service) Get(ctx context.Context, id string) (*models.PopulatedCart, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.Products))
	for _, it := range c.Products {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve cart %s products: %w", id, err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := &models.PopulatedCart{
		ID:          c.ID,
		Description: c.Description,
		Products:    make([]models.PopulatedItem, 0, len(c.Products)),
	}
	for _, it := range c.Products {
		item := models.PopulatedItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := byID[it.ProductID]; ok {
			item.Product = &p
		}
		out.Products = append(out.Products, item)
	}
	return out, nil
}

// AddProduct puts quantity units of productID into cart cartID. A nil
// quantity means DefaultQuantity. An existing entry is incremented.
func (s *Service) AddProduct(ctx context.Context, cartID, productID string, quantity *int) (*models.Cart, error) {
	qty := DefaultQuantity
	if quantity != nil {
		qty = *quantity
	}
	if qty < 1 {
		return nil, services.Invalid("quantity must be at least 1")
	}

	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return nil, lookupErr(err, "product", productID)
	}
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if i := c.IndexOf(productID); i >= 0 {
		c.Products[i].Quantity += qty
	} else {
		c.Products = append(c.Products, models.CartItem{ProductID: productID, Quantity: qty})
	}

	return c, s.save(ctx, c)
}

// UpdateQuantity sets the quantity of a product already in the cart.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, services.Invalid("quantity must be at least 1")
	}
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	i := c.IndexOf(productID)
	if i < 0 {
		return nil, services.NotFound("product " + productID + " in cart")
	}
	c.Products[i].Quantity = quantity
	return c, s.save(ctx, c)
}

// ReplaceProducts swaps the cart's whole list. If any product id is unknown
// nothing is written.
func (s *Service) ReplaceProducts(ctx context.Context, cartID string, items []models.CartItem) (*models.Cart, error) {
	merged, err := mergeItems(items)
	if err != nil {
		return nil, err
	}

	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(merged))
	for _, it := range merged {
		ids = append(ids, it.ProductID)
	}
	existing, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check products: %w", err)
	}
	if len(existing) != len(ids) {
		known := make(map[string]bool, len(existing))
		for _, p := range existing {
			known[p.ID] = true
		}
		var unknown []string
		for _, id := range ids {
			if !known[id] {
				unknown = append(unknown, id)
			}
		}
		return nil, services.Invalid("one or more products do not exist: %s", strings.Join(unknown, ", "))
	}

	c.Products = merged
	return c, s.save(ctx, c)
}

// RemoveProduct drops productID from the cart. Removing a product that is
// not in the cart still succeeds.
func (s *Service) RemoveProduct(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	kept := c.Products[:0]
	for _, it := range c.Products {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Products = kept
	return c, s.save(ctx, c)
}

// Clear empties the cart. The cart record itself is kept.
func (s *Service) Clear(ctx context.Context, cartID string) (*models.Cart, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c.Products = []models.CartItem{}
	return c, s.save(ctx, c)
}

func (s *Service) load(ctx context.Context, id string) (*models.Cart, error) {
	c, err := s.carts.GetCart(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "cart", id)
	}
	if c.Products == nil {
		c.Products = []models.CartItem{}
	}
	return c, nil
}

func (s *Service) save(ctx context.Context, c *models.Cart) error {
	if err := s.carts.SaveCart(ctx, c); err != nil {
		return lookupErr(err, "cart", c.ID)
	}
	s.notifier.Publish(services.EventCartUpdated)
	return nil
}

// mergeItems validates a replacement list and folds duplicate product ids
// into one entry, keeping first-seen order.
func mergeItems(items []models.CartItem) ([]models.CartItem, error) {
	merged := make([]models.CartItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return nil, services.Invalid("every product entry needs a productId")
		}
		qty := it.Quantity
		if qty < 1 {
			return nil, services.Invalid("quantity for %s must be at least 1", id)
		}
		if i, ok := index[id]; ok {
			merged[i].Quantity += qty
			continue
		}
		index[id] = len(merged)
		merged = append(merged, models.CartItem{ProductID: id, Quantity: qty})
	}
	return merged, nil
}

func lookupErr(err error, kind, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.NotFound(kind + " " + id)
	}
	return fmt.Errorf("%s %s: %w", kind, id, err)
}
