package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// ServiceStoreRepository reads the seeded `services` collection. The catalog
// is never mutated by the storefront.

type ServiceStoreRepository struct {
	store storage.Store
}

var _ interfaces.IServiceRepository = (*ServiceStoreRepository)(nil)

func NewServiceStoreRepository(store storage.Store) *ServiceStoreRepository {
	return &ServiceStoreRepository{store: store}
}

func (r *ServiceStoreRepository) GetAll(ctx context.Context) ([]entities.Service, error) {
	return loadCollection[entities.Service](ctx, r.store, storage.KeyServices)
}

func (r *ServiceStoreRepository) GetByID(ctx context.Context, id int) (entities.Service, error) {
	services, err := r.GetAll(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, nil
}

// CategoryStoreRepository reads the seeded `categories` collection.

type CategoryStoreRepository struct {
	store storage.Store
}

var _ interfaces.ICategoryRepository = (*CategoryStoreRepository)(nil)

func NewCategoryStoreRepository(store storage.Store) *CategoryStoreRepository {
	return &CategoryStoreRepository{store: store}
}

func (r *CategoryStoreRepository) GetAll(ctx context.Context) ([]entities.Category, error) {
	return loadCollection[entities.Category](ctx, r.store, storage.KeyCategories)
}
