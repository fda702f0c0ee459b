package specification

import (
	"strings"

	"markethub-be/internal/entity"

	"gorm.io/gorm"
)

type ByStoreID struct {
	StoreID int
}

func (s ByStoreID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("store_id = ?", s.StoreID)
}

// ByCategory matches case-insensitively
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(category) = ?", strings.ToLower(s.Category))
}

type NameContains struct {
	Query string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+escapeLike(s.Query)+"%")
}

type MinRating struct {
	Rating float64
}

func (s MinRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating >= ?", s.Rating)
}

// ForProductFilter translates a listing filter into specifications, ordered by id.
func ForProductFilter(f entity.ProductFilter) []Specification {
	specs := []Specification{}
	if f.StoreId != nil {
		specs = append(specs, ByStoreID{StoreID: *f.StoreId})
	}
	if f.Category != "" {
		specs = append(specs, ByCategory{Category: f.Category})
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		specs = append(specs, NameContains{Query: q})
	}
	if f.MinRating > 0 {
		specs = append(specs, MinRating{Rating: f.MinRating})
	}
	return append(specs, OrderBy{Field: "id"}, Pagination{Limit: f.Limit, Offset: f.Offset})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
