package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"markethub-be/internal/dto"
	"markethub-be/internal/entity"
	"markethub-be/internal/pkg/logger"
	"markethub-be/internal/repository/unitofwork"
	"markethub-be/pkg/cart"
	"markethub-be/pkg/events"
)

// maxCheckoutAttempts bounds retries when the cart changes between pricing
// and order creation.
const maxCheckoutAttempts = 3

var errCartChanged = errors.New("cart changed during checkout")

type ICheckoutService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id int) (*dto.OrderResponse, error)
}

type checkoutService struct {
	cart         *cart.Manager
	catalog      ICatalogService
	uowFactory   unitofwork.RepositoryFactory
	events       EventPublisher
	confirmation IPublisherService
	logger       logger.ILogger
}

func NewCheckoutService(
	manager *cart.Manager,
	catalog ICatalogService,
	uowFactory unitofwork.RepositoryFactory,
	events EventPublisher,
	confirmation IPublisherService,
	log logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		cart:         manager,
		catalog:      catalog,
		uowFactory:   uowFactory,
		events:       events,
		confirmation: confirmation,
		logger:       log,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.DefaultPaymentMethod
	}
	address := req.ShippingAddress.ToEntity()

	var (
		order  *entity.Order
		priced pricedCart
		err    error
	)
	for attempt := 1; attempt <= maxCheckoutAttempts; attempt++ {
		order, priced, err = s.placeOrder(ctx, address, paymentMethod)
		if !errors.Is(err, errCartChanged) {
			break
		}
		s.logger.Warn("CHECKOUT", "Cart changed while pricing, retrying", map[string]interface{}{"attempt": attempt})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("CHECKOUT", "Order placed", map[string]interface{}{
		"order_id": order.Id,
		"total":    order.Total,
		"lines":    len(order.Items),
	})
	s.announce(ctx, order, priced)

	res := orderResponse(order, priced.products)
	return &res, nil
}

func (s *checkoutService) placeOrder(ctx context.Context, address entity.ShippingAddress, paymentMethod string) (*entity.Order, pricedCart, error) {
	items := s.cart.GetCart()
	if len(items) == 0 {
		return nil, pricedCart{}, cart.ErrEmptyCart
	}

	priced, err := priceCart(ctx, s.catalog, items)
	if err != nil {
		return nil, pricedCart{}, err
	}

	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if product, ok := priced.resolve(it.ProductId); ok {
			orderItems = append(orderItems, entity.OrderItem{ProductId: it.ProductId, Quantity: it.Quantity, Price: product.Price})
		}
	}

	data := cart.OrderData{
		Items:           orderItems,
		Total:           priced.totals.Total,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	}

	order, err := s.cart.CreateOrderWith(data, func(order *entity.Order) error {
		if !slices.Equal(order.Items, items) {
			return errCartChanged
		}
		return s.record(ctx, order)
	})
	return order, priced, err
}

// record stores the order and takes the sold quantities out of stock in one transaction.
func (s *checkoutService) record(ctx context.Context, order *entity.Order) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.OrderRepository().Save(ctx, order); err != nil {
		uow.Rollback()
		return fmt.Errorf("save order: %w", err)
	}
	for _, it := range order.PricedItems {
		if err := uow.ProductRepository().DecrementStock(ctx, it.ProductId, it.Quantity); err != nil {
			uow.Rollback()
			return fmt.Errorf("decrement stock of product %d: %w", it.ProductId, err)
		}
	}
	return uow.Commit()
}

// announce is best effort: the order already exists, so failures are only logged.
func (s *checkoutService) announce(ctx context.Context, order *entity.Order, priced pricedCart) {
	payload := orderPlacedPayload(order, priced.products)

	if err := s.confirmation.Publish(ctx, payload); err != nil {
		s.logger.Error("CHECKOUT", "Failed to queue confirmation email", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
	}

	ev, err := payload.Event()
	if err == nil {
		err = s.events.Publish(ctx, ev)
	}
	if err != nil {
		s.logger.Error("CHECKOUT", "Failed to publish order event", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
	}
}

func (s *checkoutService) GetOrder(ctx context.Context, id int) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", id, err)
	}

	ids := make([]int, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.ProductId)
	}
	products, err := s.catalog.ResolveProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := orderResponse(order, products)
	return &res, nil
}

func orderPlacedPayload(order *entity.Order, products map[int]entity.Product) events.OrderPlaced {
	lines := make([]events.Line, 0, len(order.PricedItems))
	count := 0
	for _, it := range order.PricedItems {
		lines = append(lines, events.Line{
			ProductId: it.ProductId,
			Name:      products[it.ProductId].Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
		count += it.Quantity
	}

	addr := order.ShippingAddress
	return events.OrderPlaced{
		OrderId:           order.Id,
		Email:             addr.Email,
		CustomerName:      addr.FirstName + " " + addr.LastName,
		Total:             order.Total,
		ItemCount:         count,
		Lines:             lines,
		CreatedAt:         order.CreatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
	}
}

func orderResponse(order *entity.Order, products map[int]entity.Product) dto.OrderResponse {
	prices := make(map[int]float64, len(order.PricedItems))
	for _, it := range order.PricedItems {
		prices[it.ProductId] = it.Price
	}

	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, line := range order.Items {
		price := prices[line.ProductId]
		items = append(items, dto.OrderItemResponse{
			LineItemId: line.Id,
			ProductId:  line.ProductId,
			Name:       products[line.ProductId].Name,
			Quantity:   line.Quantity,
			Price:      price,
			LineTotal:  cart.ResolvedLine{Item: line, Product: entity.Product{Price: price}}.LineTotal(),
		})
	}

	return dto.OrderResponse{
		Id:                order.Id,
		Items:             items,
		Total:             order.Total,
		ShippingAddress:   order.ShippingAddress,
		PaymentMethod:     order.PaymentMethod,
		Status:            order.Status,
		CreatedAt:         order.CreatedAt,
		EstimatedDelivery: order.EstimatedDelivery,
	}
}
