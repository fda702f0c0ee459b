package memory

import (
	"context"
	"sync"

	"markethub-be/internal/entity"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int]entity.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: map[int]entity.Order{}}
}

func (r *OrderRepository) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.Id] = order.Clone()
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	out := order.Clone()
	return &out, nil
}

func (r *OrderRepository) MaxID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := 0
	for id := range r.orders {
		if id > max {
			max = id
		}
	}
	return max, nil
}
