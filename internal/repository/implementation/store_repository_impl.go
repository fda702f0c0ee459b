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

type StoreRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StoreMapper
}

func NewStoreRepository(db *gorm.DB) contract.StoreRepository {
	return &StoreRepositoryImpl{
		db:     db,
		mapper: mapper.NewStoreMapper(),
	}
}

func (r *StoreRepositoryImpl) Create(ctx context.Context, store *entity.Store) error {
	m := r.mapper.ToModel(store)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*store = *r.mapper.ToEntity(m)
	return nil
}

func (r *StoreRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Store, error) {
	var m model.Store
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StoreRepositoryImpl) FindAll(ctx context.Context) ([]entity.Store, error) {
	var models []*model.Store
	query := applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "id"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}
