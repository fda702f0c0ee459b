package unitofwork

import (
	"context"
	"fmt"
	"sync"

	"markethub-be/internal/entity"
	"markethub-be/internal/repository/contract"
)

// MemoryRepositoryFactory hands out units of work over in-memory repositories.
// Writes made through a started unit are staged and applied on Commit.
// Units are serialized so staged writes never interleave.
type MemoryRepositoryFactory struct {
	mu       sync.Mutex
	stores   contract.StoreRepository
	products contract.ProductRepository
	orders   contract.OrderRepository
}

func NewMemoryRepositoryFactory(stores contract.StoreRepository, products contract.ProductRepository, orders contract.OrderRepository) *MemoryRepositoryFactory {
	return &MemoryRepositoryFactory{stores: stores, products: products, orders: orders}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

type memoryUnitOfWork struct {
	factory *MemoryRepositoryFactory
	ctx     context.Context
	active  bool
	staged  []func(ctx context.Context) error
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return fmt.Errorf("transaction already started")
	}
	u.factory.mu.Lock()
	u.ctx = ctx
	u.active = true
	u.staged = nil
	return nil
}

func (u *memoryUnitOfWork) Commit() error {
	if !u.active {
		return fmt.Errorf("no transaction to commit")
	}
	defer u.finish()
	for _, apply := range u.staged {
		if err := apply(u.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	if !u.active {
		return fmt.Errorf("no transaction to rollback")
	}
	u.finish()
	return nil
}

func (u *memoryUnitOfWork) finish() {
	u.active = false
	u.staged = nil
	u.factory.mu.Unlock()
}

func (u *memoryUnitOfWork) StoreRepository() contract.StoreRepository {
	return u.factory.stores
}

func (u *memoryUnitOfWork) ProductRepository() contract.ProductRepository {
	if !u.active {
		return u.factory.products
	}
	return &stagedProducts{ProductRepository: u.factory.products, uow: u}
}

func (u *memoryUnitOfWork) OrderRepository() contract.OrderRepository {
	if !u.active {
		return u.factory.orders
	}
	return &stagedOrders{OrderRepository: u.factory.orders, uow: u}
}

type stagedProducts struct {
	contract.ProductRepository
	uow *memoryUnitOfWork
}

func (s *stagedProducts) DecrementStock(ctx context.Context, id int, quantity int) error {
	if _, err := s.ProductRepository.FindByID(ctx, id); err != nil {
		return err
	}
	s.uow.staged = append(s.uow.staged, func(ctx context.Context) error {
		return s.ProductRepository.DecrementStock(ctx, id, quantity)
	})
	return nil
}

type stagedOrders struct {
	contract.OrderRepository
	uow *memoryUnitOfWork
}

func (s *stagedOrders) Save(_ context.Context, order *entity.Order) error {
	snapshot := order.Clone()
	s.uow.staged = append(s.uow.staged, func(ctx context.Context) error {
		return s.OrderRepository.Save(ctx, &snapshot)
	})
	return nil
}
