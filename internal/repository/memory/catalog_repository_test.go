package memory

import (
	"context"
	"testing"

	"markethub-be/internal/entity"
	"markethub-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Stores(t *testing.T) {
	ctx := context.Background()
	stores := NewCatalogRepository(catalog.DefaultSeed()).Stores()

	all, err := stores.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, 1, all[0].Id)

	created := &entity.Store{Name: "Corner", Description: "Misc"}
	require.NoError(t, stores.Create(ctx, created))
	assert.Equal(t, 6, created.Id)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = stores.FindByID(ctx, 99)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	products := NewCatalogRepository(catalog.DefaultSeed()).Products()

	p, err := products.FindByID(ctx, 1)
	require.NoError(t, err)
	p.Name = "changed"
	p.Specifications["Display"] = "changed"

	again, err := products.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nova X12 Smartphone", again.Name)
	assert.Equal(t, `6.5" OLED`, again.Specifications["Display"])
}

func TestCatalogRepository_FindAllFilters(t *testing.T) {
	store := 2
	products := NewCatalogRepository(catalog.DefaultSeed()).Products()

	got, err := products.FindAll(context.Background(), entity.ProductFilter{StoreId: &store})
	require.NoError(t, err)

	ids := []int{}
	for _, p := range got {
		ids = append(ids, p.Id)
	}
	assert.Equal(t, []int{5, 6, 7}, ids)
}

func TestCatalogRepository_DecrementStockFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	products := NewCatalogRepository(catalog.DefaultSeed()).Products()

	require.NoError(t, products.DecrementStock(ctx, 8, 3))
	p, _ := products.FindByID(ctx, 8)
	assert.Equal(t, 5, p.Stock)

	require.NoError(t, products.DecrementStock(ctx, 8, 100))
	p, _ = products.FindByID(ctx, 8)
	assert.Equal(t, 0, p.Stock)

	assert.ErrorIs(t, products.DecrementStock(ctx, 404, 1), entity.ErrNotFound)
}

func TestCatalogRepository_CreateProductNeedsStore(t *testing.T) {
	products := NewCatalogRepository(nil).Products()
	err := products.Create(context.Background(), &entity.Product{Name: "Orphan", StoreId: 1})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	max, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	require.NoError(t, repo.Save(ctx, &entity.Order{Id: 3, Items: []entity.LineItem{{Id: 1, ProductId: 2, Quantity: 1}}}))
	require.NoError(t, repo.Save(ctx, &entity.Order{Id: 1}))

	max, _ = repo.MaxID(ctx)
	assert.Equal(t, 3, max)

	got, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	got.Items[0].Quantity = 99

	again, _ := repo.FindByID(ctx, 3)
	assert.Equal(t, 1, again.Items[0].Quantity)

	_, err = repo.FindByID(ctx, 2)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCatalogRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()
	products := NewCatalogRepository(catalog.DefaultSeed()).Products()

	found, err := products.FindByIDs(ctx, []int{5, 99, 1, 5})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 1, found[0].Id)
	assert.Equal(t, 5, found[1].Id)

	none, err := products.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
