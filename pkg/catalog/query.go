// Package catalog holds pure helpers over stores and products: filtering,
// featured selection and the YAML seed format.
package catalog

import (
	"strings"

	"markethub-be/internal/entity"
)

const (
	FeaturedMinRating    = 4.5
	DefaultFeaturedLimit = 4
	DefaultPerStore      = 2
)

// MatchProduct reports whether p satisfies every constraint set in f.
func MatchProduct(p entity.Product, f entity.ProductFilter) bool {
	if f.StoreId != nil && p.StoreId != *f.StoreId {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
		return false
	}
	return p.Rating >= f.MinRating
}

// Filter returns the matching products, paginated by f.Limit and f.Offset.
func Filter(products []entity.Product, f entity.ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if MatchProduct(p, f) {
			out = append(out, p)
		}
	}
	return Paginate(out, f.Limit, f.Offset)
}

// Paginate slices products. A non-positive limit means no limit.
func Paginate(products []entity.Product, limit, offset int) []entity.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(products) {
		return []entity.Product{}
	}
	end := len(products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return products[offset:end]
}

// Featured returns the first limit products rated at least FeaturedMinRating.
func Featured(products []entity.Product, limit int) []entity.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return Filter(products, entity.ProductFilter{MinRating: FeaturedMinRating, Limit: limit})
}

type StoreFeatured struct {
	StoreId  int
	Products []entity.Product
}

// GroupFeaturedByStore keeps at most perStore highly rated products for each
// store, with stores ordered by first appearance.
func GroupFeaturedByStore(products []entity.Product, perStore int) []StoreFeatured {
	if perStore <= 0 {
		perStore = DefaultPerStore
	}

	groups := []StoreFeatured{}
	index := map[int]int{}
	for _, p := range products {
		if p.Rating < FeaturedMinRating {
			continue
		}
		i, ok := index[p.StoreId]
		if !ok {
			i = len(groups)
			index[p.StoreId] = i
			groups = append(groups, StoreFeatured{StoreId: p.StoreId})
		}
		if len(groups[i].Products) < perStore {
			groups[i].Products = append(groups[i].Products, p)
		}
	}
	return groups
}

// ParseCategories splits a comma separated list, trimming blanks.
func ParseCategories(raw string) []string {
	out := []string{}
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// NewStore applies creation defaults.
func NewStore(name, description, icon, themeColor string, categories []string) entity.Store {
	if strings.TrimSpace(icon) == "" {
		icon = entity.DefaultStoreIcon
	}
	if strings.TrimSpace(themeColor) == "" {
		themeColor = entity.DefaultStoreThemeColor
	}
	cleaned := []string{}
	for _, c := range categories {
		cleaned = append(cleaned, ParseCategories(c)...)
	}
	return entity.Store{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Icon:        icon,
		ThemeColor:  themeColor,
		Categories:  cleaned,
	}
}
