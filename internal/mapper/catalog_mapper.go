package mapper

import (
	"markethub-be/internal/entity"
	"markethub-be/internal/model"

	"gorm.io/datatypes"
)

type StoreMapper struct{}

func NewStoreMapper() *StoreMapper {
	return &StoreMapper{}
}

func (m *StoreMapper) ToEntity(s *model.Store) *entity.Store {
	if s == nil {
		return nil
	}
	return &entity.Store{
		Id:          s.Id,
		Name:        s.Name,
		Icon:        s.Icon,
		ThemeColor:  s.ThemeColor,
		Description: s.Description,
		Categories:  append([]string{}, s.Categories...),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StoreMapper) ToModel(s *entity.Store) *model.Store {
	if s == nil {
		return nil
	}
	return &model.Store{
		Id:          s.Id,
		Name:        s.Name,
		Icon:        s.Icon,
		ThemeColor:  s.ThemeColor,
		Description: s.Description,
		Categories:  datatypes.JSONSlice[string](append([]string{}, s.Categories...)),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *StoreMapper) ToEntities(stores []*model.Store) []entity.Store {
	entities := make([]entity.Store, len(stores))
	for i, s := range stores {
		entities[i] = *m.ToEntity(s)
	}
	return entities
}

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	out := entity.Product{
		Id:             p.Id,
		Name:           p.Name,
		Price:          p.Price,
		Description:    p.Description,
		Images:         p.Images,
		Category:       p.Category,
		Stock:          p.Stock,
		Rating:         p.Rating,
		Specifications: p.Specifications.Data(),
		StoreId:        p.StoreId,
	}.Clone()
	return &out
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &model.Product{
		Id:             c.Id,
		Name:           c.Name,
		Price:          c.Price,
		Description:    c.Description,
		Images:         datatypes.JSONSlice[string](c.Images),
		Category:       c.Category,
		Stock:          c.Stock,
		Rating:         c.Rating,
		Specifications: datatypes.NewJSONType(c.Specifications),
		StoreId:        c.StoreId,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []entity.Product {
	entities := make([]entity.Product, len(products))
	for i, p := range products {
		entities[i] = *m.ToEntity(p)
	}
	return entities
}
