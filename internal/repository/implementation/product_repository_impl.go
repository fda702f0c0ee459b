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

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	var m model.Product
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindByIDs(ctx context.Context, ids []int) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var models []*model.Product
	query := applySpecifications(r.db.WithContext(ctx), specification.ByIDs{IDs: ids}, specification.OrderBy{Field: "id"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	var models []*model.Product
	query := applySpecifications(r.db.WithContext(ctx), specification.ForProductFilter(filter)...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, id int, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
