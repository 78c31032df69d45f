package store

import (
	"sort"
	"strings"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
)

// Match reports whether p passes the filter part of q. Backends that cannot
// push the filter down to the database evaluate it in memory with Match.
func (q ProductQuery) Match(p models.Product) bool {
	if q.OnlyAvailable && p.Stock <= 0 {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Category), needle) &&
			!strings.Contains(strings.ToLower(p.Title), needle) {
			return false
		}
	}
	return true
}

// Apply filters, sorts and windows products in memory. The returned total
// is the number of matches before Skip/Limit.
func (q ProductQuery) Apply(products []models.Product) ([]models.Product, int64) {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.Match(p) {
			matched = append(matched, p)
		}
	}

	switch q.Sort {
	case SortAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	}

	total := int64(len(matched))
	if q.Skip > 0 {
		if q.Skip >= len(matched) {
			return []models.Product{}, total
		}
		matched = matched[q.Skip:]
	}
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total
}
