package contract

import (
	"context"

	"markethub-be/internal/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int) (*entity.Product, error)
	// FindByIDs returns the products that exist among ids, ordered by id.
	FindByIDs(ctx context.Context, ids []int) ([]entity.Product, error)
	FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	// DecrementStock lowers stock by quantity, never below zero.
	DecrementStock(ctx context.Context, id int, quantity int) error
}
