package implementation

import (
	"context"
	"errors"

	"markethub-be/internal/entity"
	"markethub-be/internal/mapper"
	"markethub-be/internal/model"
	"markethub-be/internal/repository/contract"
	"markethub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Save(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	var m model.Order
	query := applySpecifications(r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_item_id ASC")
	}), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OrderRepositoryImpl) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Order{}).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	return max, err
}
