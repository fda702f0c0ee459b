// Package cart holds the shopper's line items and turns them into orders.
package cart

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"markethub-be/internal/entity"
)

const (
	DefaultQuantity       = 1
	DefaultDeliveryOffset = 5 * 24 * time.Hour
)

var (
	ErrInvalidProductID = errors.New("product id must be a positive integer")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrEmptyCart        = errors.New("cart is empty")
)

// OrderData is the checkout payload. Items are priced by the caller.
type OrderData struct {
	Items           []entity.OrderItem
	Total           float64
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
}

// CommitFunc runs inside CreateOrderWith after the order is built and before the
// cart is emptied. A non-nil error aborts the whole operation.
type CommitFunc func(order *entity.Order) error

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithDeliveryOffset(d time.Duration) Option {
	return func(m *Manager) { m.deliveryOffset = d }
}

// WithOrderSequence makes the next order id last+1.
func WithOrderSequence(last int) Option {
	return func(m *Manager) { m.lastOrderId = last }
}

// Manager owns the line items of a single cart. All methods are safe for
// concurrent use; readers always see a state from before or after a mutation.
type Manager struct {
	mu             sync.RWMutex
	items          []entity.LineItem
	lastOrderId    int
	now            func() time.Time
	deliveryOffset time.Duration
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		now:            time.Now,
		deliveryOffset: DefaultDeliveryOffset,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ParseProductID coerces boundary input ("12", " 7 ") into a product id.
func ParseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProductID, raw)
	}
	return id, nil
}

func (m *Manager) GetCart() []entity.LineItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot()
}

// Count is the total number of units in the cart.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

func (m *Manager) AddToCart(productId, quantity int) ([]entity.LineItem, error) {
	if productId <= 0 {
		return nil, ErrInvalidProductID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(productId); i >= 0 {
		if quantity > math.MaxInt-m.items[i].Quantity {
			return nil, fmt.Errorf("%w: %d more would overflow", ErrInvalidQuantity, quantity)
		}
		m.items[i].Quantity += quantity
		return m.snapshot(), nil
	}

	m.items = append(m.items, entity.LineItem{
		Id:        m.nextItemId(),
		ProductId: productId,
		Quantity:  quantity,
		AddedAt:   m.now(),
	})
	return m.snapshot(), nil
}

// UpdateQuantity sets an absolute quantity. Unknown products are ignored and a
// quantity of zero or less removes the line.
func (m *Manager) UpdateQuantity(productId, quantity int) []entity.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(productId)
	if i < 0 {
		return m.snapshot()
	}
	if quantity <= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
		return m.snapshot()
	}
	m.items[i].Quantity = quantity
	return m.snapshot()
}

func (m *Manager) RemoveFromCart(productId int) []entity.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(productId); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}
	return m.snapshot()
}

func (m *Manager) ClearCart() []entity.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return []entity.LineItem{}
}

func (m *Manager) CreateOrder(data OrderData) (*entity.Order, error) {
	return m.CreateOrderWith(data, nil)
}

// CreateOrderWith materializes an order from the current lines, hands it to
// commit, and empties the cart. The cart and the order sequence only change
// when commit succeeds.
func (m *Manager) CreateOrderWith(data OrderData, commit CommitFunc) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	createdAt := m.now()
	order := &entity.Order{
		Id:                m.lastOrderId + 1,
		Items:             m.snapshot(),
		PricedItems:       append([]entity.OrderItem(nil), data.Items...),
		Total:             data.Total,
		ShippingAddress:   data.ShippingAddress,
		PaymentMethod:     data.PaymentMethod,
		Status:            entity.OrderStatusConfirmed,
		CreatedAt:         createdAt,
		EstimatedDelivery: createdAt.Add(m.deliveryOffset),
	}

	if commit != nil {
		if err := commit(order); err != nil {
			return nil, fmt.Errorf("commit order %d: %w", order.Id, err)
		}
	}

	m.lastOrderId = order.Id
	m.items = nil

	out := order.Clone()
	return &out, nil
}

func (m *Manager) indexOf(productId int) int {
	for i, item := range m.items {
		if item.ProductId == productId {
			return i
		}
	}
	return -1
}

func (m *Manager) nextItemId() int {
	maxId := 0
	for _, item := range m.items {
		if item.Id > maxId {
			maxId = item.Id
		}
	}
	return maxId + 1
}

func (m *Manager) snapshot() []entity.LineItem {
	out := make([]entity.LineItem, len(m.items))
	copy(out, m.items)
	return out
}
