package service

import (
	"context"
	"fmt"
	"time"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/repository/contract"
	"markethub-be/pkg/catalog"
	"markethub-be/pkg/events"

	"golang.org/x/sync/errgroup"
)

type ICatalogService interface {
	ListStores(ctx context.Context) ([]dto.StoreResponse, error)
	GetStore(ctx context.Context, id int) (*dto.StoreResponse, error)
	CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*dto.StoreResponse, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]dto.ProductResponse, error)
	GetProduct(ctx context.Context, id int) (*dto.ProductResponse, error)
	FeaturedProducts(ctx context.Context, limit int) ([]dto.ProductResponse, error)
	FeaturedByStore(ctx context.Context, perStore int) ([]dto.FeaturedStoreResponse, error)

	// Stores returns the raw store list for other services.
	Stores(ctx context.Context) ([]entity.Store, error)
	// ResolveProducts looks ids up in one query. Unknown ids are left out of the
	// result; only repository failures are errors.
	ResolveProducts(ctx context.Context, ids []int) (map[int]entity.Product, error)
}

type catalogService struct {
	stores    contract.StoreRepository
	products  contract.ProductRepository
	publisher EventPublisher
	logger    logger.ILogger
}

func NewCatalogService(stores contract.StoreRepository, products contract.ProductRepository, publisher EventPublisher, log logger.ILogger) ICatalogService {
	return &catalogService{
		stores:    stores,
		products:  products,
		publisher: publisher,
		logger:    log,
	}
}

func (s *catalogService) ListStores(ctx context.Context) ([]dto.StoreResponse, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, st := range stores {
		out = append(out, dto.NewStoreResponse(st))
	}
	return out, nil
}

func (s *catalogService) Stores(ctx context.Context) ([]entity.Store, error) {
	return s.stores.FindAll(ctx)
}

func (s *catalogService) GetStore(ctx context.Context, id int) (*dto.StoreResponse, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store %d: %w", id, err)
	}
	res := dto.NewStoreResponse(*store)
	return &res, nil
}

func (s *catalogService) CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := catalog.NewStore(req.Name, req.Description, req.Icon, req.ThemeColor, []string{req.Categories})
	if err := s.stores.Create(ctx, &store); err != nil {
		return nil, err
	}

	s.logger.Info("CATALOG", "Store created", map[string]interface{}{"store_id": store.Id, "name": store.Name})
	ev := events.New(events.TypeCatalogChanged, map[string]interface{}{"store_id": store.Id, "action": "store_created"}, time.Now())
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("CATALOG", "Failed to publish catalog event", map[string]interface{}{"error": err.Error()})
	}

	res := dto.NewStoreResponse(store)
	return &res, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]dto.ProductResponse, error) {
	if filter.StoreId != nil {
		if _, err := s.stores.FindByID(ctx, *filter.StoreId); err != nil {
			return nil, fmt.Errorf("store %d: %w", *filter.StoreId, err)
		}
	}
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(products), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	res := dto.NewProductResponse(*product)
	return &res, nil
}

func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]dto.ProductResponse, error) {
	products, err := s.products.FindAll(ctx, entity.ProductFilter{MinRating: catalog.FeaturedMinRating})
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(catalog.Featured(products, limit)), nil
}

func (s *catalogService) FeaturedByStore(ctx context.Context, perStore int) ([]dto.FeaturedStoreResponse, error) {
	var (
		stores   []entity.Store
		products []entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stores, err = s.stores.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.products.FindAll(gctx, entity.ProductFilter{MinRating: catalog.FeaturedMinRating})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byId := make(map[int]entity.Store, len(stores))
	for _, st := range stores {
		byId[st.Id] = st
	}

	out := []dto.FeaturedStoreResponse{}
	for _, group := range catalog.GroupFeaturedByStore(products, perStore) {
		store, ok := byId[group.StoreId]
		if !ok {
			continue
		}
		out = append(out, dto.FeaturedStoreResponse{
			Store:    dto.NewStoreResponse(store),
			Products: dto.NewProductResponses(group.Products),
		})
	}
	return out, nil
}

func (s *catalogService) ResolveProducts(ctx context.Context, ids []int) (map[int]entity.Product, error) {
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}
	out := make(map[int]entity.Product, len(products))
	for _, p := range products {
		out[p.Id] = p
	}
	return out, nil
}
