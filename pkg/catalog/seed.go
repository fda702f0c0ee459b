package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"markethub-be/internal/entity"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultSeed []byte

type Seed struct {
	Stores   []SeedStore   `yaml:"stores"`
	Products []SeedProduct `yaml:"products"`
}

type SeedStore struct {
	Id          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Icon        string   `yaml:"icon"`
	ThemeColor  string   `yaml:"theme_color"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"`
}

type SeedProduct struct {
	Id             int               `yaml:"id"`
	Name           string            `yaml:"name"`
	Price          float64           `yaml:"price"`
	Description    string            `yaml:"description"`
	Images         []string          `yaml:"images"`
	Category       string            `yaml:"category"`
	Stock          int               `yaml:"stock"`
	Rating         float64           `yaml:"rating"`
	Specifications map[string]string `yaml:"specifications"`
	StoreId        int               `yaml:"store_id"`
}

// LoadSeed decodes and validates a catalog seed document.
func LoadSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// DefaultSeed returns the embedded demo catalog.
func DefaultSeed() *Seed {
	seed, err := LoadSeed(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(err)
	}
	return seed
}

func (s *Seed) validate() error {
	stores := make(map[int]bool, len(s.Stores))
	for _, st := range s.Stores {
		if st.Id <= 0 || st.Name == "" {
			return fmt.Errorf("catalog seed: store %q needs a positive id and a name", st.Name)
		}
		if stores[st.Id] {
			return fmt.Errorf("catalog seed: duplicate store id %d", st.Id)
		}
		stores[st.Id] = true
	}

	products := make(map[int]bool, len(s.Products))
	for _, p := range s.Products {
		if p.Id <= 0 || p.Name == "" {
			return fmt.Errorf("catalog seed: product %q needs a positive id and a name", p.Name)
		}
		if products[p.Id] {
			return fmt.Errorf("catalog seed: duplicate product id %d", p.Id)
		}
		if !stores[p.StoreId] {
			return fmt.Errorf("catalog seed: product %d references unknown store %d", p.Id, p.StoreId)
		}
		if p.Price < 0 || p.Stock < 0 {
			return fmt.Errorf("catalog seed: product %d has negative price or stock", p.Id)
		}
		products[p.Id] = true
	}
	return nil
}

func (s *Seed) StoreEntities() []entity.Store {
	out := make([]entity.Store, 0, len(s.Stores))
	for _, st := range s.Stores {
		store := NewStore(st.Name, st.Description, st.Icon, st.ThemeColor, st.Categories)
		store.Id = st.Id
		out = append(out, store)
	}
	return out
}

func (s *Seed) ProductEntities() []entity.Product {
	out := make([]entity.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, entity.Product{
			Id:             p.Id,
			Name:           p.Name,
			Price:          p.Price,
			Description:    p.Description,
			Images:         append([]string(nil), p.Images...),
			Category:       p.Category,
			Stock:          p.Stock,
			Rating:         p.Rating,
			Specifications: p.Specifications,
			StoreId:        p.StoreId,
		})
	}
	return out
}
