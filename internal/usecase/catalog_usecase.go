package usecase

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the seeded catalog to the storefront.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type CatalogUseCase struct {
	services   interfaces.IServiceRepository
	categories interfaces.ICategoryRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, categories interfaces.ICategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services, categories: categories}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.services.GetAll(ctx)
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return u.categories.GetAll(ctx)
}
