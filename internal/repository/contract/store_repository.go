package contract

import (
	"context"

	"markethub-be/internal/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id int) (*entity.Store, error)
	FindAll(ctx context.Context) ([]entity.Store, error)
}
