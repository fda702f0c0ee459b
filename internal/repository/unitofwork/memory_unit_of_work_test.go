package unitofwork

import (
	"context"
	"testing"

	"markethub-be/internal/entity"
	"markethub-be/internal/repository/memory"
	"markethub-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryFactory() (*MemoryRepositoryFactory, *memory.CatalogRepository, *memory.OrderRepository) {
	cat := memory.NewCatalogRepository(catalog.DefaultSeed())
	orders := memory.NewOrderRepository()
	return NewMemoryRepositoryFactory(cat.Stores(), cat.Products(), orders), cat, orders
}

func TestMemoryUnitOfWork_CommitAppliesStagedWrites(t *testing.T) {
	ctx := context.Background()
	factory, cat, orders := newMemoryFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Save(ctx, &entity.Order{Id: 1}))
	require.NoError(t, uow.ProductRepository().DecrementStock(ctx, 1, 5))

	_, err := orders.FindByID(ctx, 1)
	assert.ErrorIs(t, err, entity.ErrNotFound, "nothing visible before commit")

	require.NoError(t, uow.Commit())

	_, err = orders.FindByID(ctx, 1)
	assert.NoError(t, err)
	p, _ := cat.Products().FindByID(ctx, 1)
	assert.Equal(t, 20, p.Stock)
}

func TestMemoryUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := context.Background()
	factory, cat, orders := newMemoryFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Save(ctx, &entity.Order{Id: 1}))
	require.NoError(t, uow.ProductRepository().DecrementStock(ctx, 1, 5))
	require.NoError(t, uow.Rollback())

	max, _ := orders.MaxID(ctx)
	assert.Equal(t, 0, max)
	p, _ := cat.Products().FindByID(ctx, 1)
	assert.Equal(t, 25, p.Stock)
}

func TestMemoryUnitOfWork_UnknownProductFailsEarly(t *testing.T) {
	ctx := context.Background()
	factory, _, _ := newMemoryFactory()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.ProductRepository().DecrementStock(ctx, 999, 1), entity.ErrNotFound)
	require.NoError(t, uow.Rollback())
}

func TestMemoryUnitOfWork_StateErrors(t *testing.T) {
	ctx := context.Background()
	factory, _, _ := newMemoryFactory()
	uow := factory.NewUnitOfWork(ctx)

	assert.Error(t, uow.Commit())
	assert.Error(t, uow.Rollback())

	require.NoError(t, uow.Begin(ctx))
	assert.Error(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())

	// A second unit can start once the first finished.
	next := factory.NewUnitOfWork(ctx)
	require.NoError(t, next.Begin(ctx))
	require.NoError(t, next.Rollback())
}
