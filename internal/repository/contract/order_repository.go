package contract

import (
	"context"

	"markethub-be/internal/entity"
)

type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int) (*entity.Order, error)
	// MaxID returns the highest stored order id, or 0 when there are none.
	MaxID(ctx context.Context) (int, error)
}
