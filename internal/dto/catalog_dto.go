package dto

import (
	"time"

	"markethub-be/internal/entity"
)

type StoreResponse struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	ThemeColor  string    `json:"theme_color"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateStoreRequest mirrors the "add store" form; categories arrive comma separated.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"omitempty,max=64"`
	ThemeColor  string `json:"theme_color" validate:"omitempty,hexcolor"`
	Categories  string `json:"categories"`
}

type ProductResponse struct {
	Id             int               `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	Specifications map[string]string `json:"specifications"`
	StoreId        int               `json:"store_id"`
}

type FeaturedStoreResponse struct {
	Store    StoreResponse     `json:"store"`
	Products []ProductResponse `json:"products"`
}

func NewStoreResponse(s entity.Store) StoreResponse {
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return StoreResponse{
		Id:          s.Id,
		Name:        s.Name,
		Icon:        s.Icon,
		ThemeColor:  s.ThemeColor,
		Description: s.Description,
		Categories:  categories,
		CreatedAt:   s.CreatedAt,
	}
}

func NewProductResponse(p entity.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	return ProductResponse{
		Id:             p.Id,
		Name:           p.Name,
		Price:          p.Price,
		Description:    p.Description,
		Images:         images,
		Category:       p.Category,
		Stock:          p.Stock,
		Rating:         p.Rating,
		Specifications: specs,
		StoreId:        p.StoreId,
	}
}

func NewProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
