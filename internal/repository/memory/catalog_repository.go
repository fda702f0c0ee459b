package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"markethub-be/internal/entity"
	"markethub-be/pkg/catalog"
)

// CatalogRepository serves stores and products from memory. It implements both
// contract.StoreRepository and contract.ProductRepository via StoreRepository
// and ProductRepository views.
type CatalogRepository struct {
	mu       sync.RWMutex
	stores   map[int]entity.Store
	products map[int]entity.Product
	now      func() time.Time
}

func NewCatalogRepository(seed *catalog.Seed) *CatalogRepository {
	r := &CatalogRepository{
		stores:   map[int]entity.Store{},
		products: map[int]entity.Product{},
		now:      time.Now,
	}
	if seed != nil {
		created := r.now()
		for _, s := range seed.StoreEntities() {
			s.CreatedAt = created
			r.stores[s.Id] = s
		}
		for _, p := range seed.ProductEntities() {
			r.products[p.Id] = p
		}
	}
	return r
}

func (r *CatalogRepository) Stores() *StoreRepository {
	return &StoreRepository{r}
}

func (r *CatalogRepository) Products() *ProductRepository {
	return &ProductRepository{r}
}

type StoreRepository struct {
	r *CatalogRepository
}

func (s *StoreRepository) Create(_ context.Context, store *entity.Store) error {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	next := 1
	for id := range s.r.stores {
		if id >= next {
			next = id + 1
		}
	}
	store.Id = next
	store.CreatedAt = s.r.now()
	s.r.stores[next] = store.Clone()
	return nil
}

func (s *StoreRepository) FindByID(_ context.Context, id int) (*entity.Store, error) {
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	store, ok := s.r.stores[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	out := store.Clone()
	return &out, nil
}

func (s *StoreRepository) FindAll(_ context.Context) ([]entity.Store, error) {
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	out := make([]entity.Store, 0, len(s.r.stores))
	for _, store := range s.r.stores {
		out = append(out, store.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

type ProductRepository struct {
	r *CatalogRepository
}

func (p *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	p.r.mu.Lock()
	defer p.r.mu.Unlock()

	if _, ok := p.r.stores[product.StoreId]; !ok {
		return entity.ErrNotFound
	}
	next := 1
	for id := range p.r.products {
		if id >= next {
			next = id + 1
		}
	}
	product.Id = next
	p.r.products[next] = product.Clone()
	return nil
}

func (p *ProductRepository) FindByID(_ context.Context, id int) (*entity.Product, error) {
	p.r.mu.RLock()
	defer p.r.mu.RUnlock()

	product, ok := p.r.products[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	out := product.Clone()
	return &out, nil
}

func (p *ProductRepository) FindByIDs(_ context.Context, ids []int) ([]entity.Product, error) {
	p.r.mu.RLock()
	defer p.r.mu.RUnlock()

	seen := make(map[int]bool, len(ids))
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		product, ok := p.r.products[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, product.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (p *ProductRepository) FindAll(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	p.r.mu.RLock()
	all := make([]entity.Product, 0, len(p.r.products))
	for _, product := range p.r.products {
		all = append(all, product.Clone())
	}
	p.r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Id < all[j].Id })
	return catalog.Filter(all, filter), nil
}

func (p *ProductRepository) DecrementStock(_ context.Context, id int, quantity int) error {
	p.r.mu.Lock()
	defer p.r.mu.Unlock()

	product, ok := p.r.products[id]
	if !ok {
		return entity.ErrNotFound
	}
	product.Stock -= quantity
	if product.Stock < 0 {
		product.Stock = 0
	}
	p.r.products[id] = product
	return nil
}
