package service

import (
	"context"
	"fmt"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/pkg/cart"
)

type ICartService interface {
	GetCart(ctx context.Context) dto.CartResponse
	Summary(ctx context.Context) (*dto.CartSummaryResponse, error)
	AddItem(ctx context.Context, req *dto.AddToCartRequest) (dto.CartResponse, error)
	UpdateItem(ctx context.Context, rawProductId string, quantity int) (dto.CartResponse, error)
	RemoveItem(ctx context.Context, rawProductId string) (dto.CartResponse, error)
	Clear(ctx context.Context) dto.CartResponse
	Count() int
}

type cartService struct {
	cart    *cart.Manager
	catalog ICatalogService
	logger  logger.ILogger
}

func NewCartService(manager *cart.Manager, catalog ICatalogService, log logger.ILogger) ICartService {
	return &cartService{
		cart:    manager,
		catalog: catalog,
		logger:  log,
	}
}

func (s *cartService) GetCart(ctx context.Context) dto.CartResponse {
	return cartResponse(s.cart.GetCart())
}

func (s *cartService) Count() int {
	return s.cart.Count()
}

func (s *cartService) AddItem(ctx context.Context, req *dto.AddToCartRequest) (dto.CartResponse, error) {
	productId, err := cart.ParseProductID(req.ProductId.String())
	if err != nil {
		return dto.CartResponse{}, err
	}
	quantity := cart.DefaultQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if _, err := s.catalog.GetProduct(ctx, productId); err != nil {
		return dto.CartResponse{}, err
	}

	items, err := s.cart.AddToCart(productId, quantity)
	if err != nil {
		return dto.CartResponse{}, err
	}
	s.logger.Info("CART", "Item added", map[string]interface{}{"product_id": productId, "quantity": quantity})
	return cartResponse(items), nil
}

func (s *cartService) UpdateItem(ctx context.Context, rawProductId string, quantity int) (dto.CartResponse, error) {
	productId, err := cart.ParseProductID(rawProductId)
	if err != nil {
		return dto.CartResponse{}, err
	}
	return cartResponse(s.cart.UpdateQuantity(productId, quantity)), nil
}

func (s *cartService) RemoveItem(ctx context.Context, rawProductId string) (dto.CartResponse, error) {
	productId, err := cart.ParseProductID(rawProductId)
	if err != nil {
		return dto.CartResponse{}, err
	}
	return cartResponse(s.cart.RemoveFromCart(productId)), nil
}

func (s *cartService) Clear(ctx context.Context) dto.CartResponse {
	return cartResponse(s.cart.ClearCart())
}

func (s *cartService) Summary(ctx context.Context) (*dto.CartSummaryResponse, error) {
	items := s.cart.GetCart()
	priced, err := priceCart(ctx, s.catalog, items)
	if err != nil {
		return nil, err
	}

	stores, err := s.catalog.Stores(ctx)
	if err != nil {
		return nil, err
	}
	storeById := make(map[int]entity.Store, len(stores))
	for _, st := range stores {
		storeById[st.Id] = st
	}

	groups := []dto.CartStoreGroupResponse{}
	for _, g := range cart.GroupByStore(items, priced.resolve) {
		group := dto.CartStoreGroupResponse{Lines: []dto.CartLineResponse{}}
		if st, ok := storeById[g.StoreId]; ok {
			res := dto.NewStoreResponse(st)
			group.Store = &res
		}
		for _, line := range g.Lines {
			group.Lines = append(group.Lines, dto.CartLineResponse{
				LineItem:  line.Item,
				Product:   dto.NewProductResponse(line.Product),
				LineTotal: line.LineTotal(),
			})
		}
		group.Subtotal = g.Subtotal()
		groups = append(groups, group)
	}

	summary := &dto.CartSummaryResponse{
		Items:  items,
		Groups: groups,
		Count:  countOf(items),
		Totals: priced.totals,
	}
	if len(items) > 0 && priced.totals.FreeShippingRemaining > 0 {
		summary.FreeShippingHint = fmt.Sprintf("Add $%.2f more for free shipping", priced.totals.FreeShippingRemaining)
	}
	return summary, nil
}

// pricedCart is a cart snapshot joined with the catalog.
type pricedCart struct {
	products map[int]entity.Product
	totals   cart.Totals
}

func (p pricedCart) resolve(productId int) (entity.Product, bool) {
	product, ok := p.products[productId]
	return product, ok
}

func (p pricedCart) price(productId int) (float64, bool) {
	product, ok := p.products[productId]
	return product.Price, ok
}

func priceCart(ctx context.Context, catalog ICatalogService, items []entity.LineItem) (pricedCart, error) {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductId)
	}
	products, err := catalog.ResolveProducts(ctx, ids)
	if err != nil {
		return pricedCart{}, err
	}

	p := pricedCart{products: products}
	p.totals = cart.ComputeTotals(cart.Subtotal(items, p.price))
	return p, nil
}

func cartResponse(items []entity.LineItem) dto.CartResponse {
	if items == nil {
		items = []entity.LineItem{}
	}
	return dto.CartResponse{Items: items, Count: countOf(items)}
}

func countOf(items []entity.LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
