package interfaces

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

// IServiceRepository abstracts the seeded `services` collection. The catalog
// is read-only for the storefront.

type IServiceRepository interface {
	GetAll(ctx context.Context) ([]entities.Service, error)
	// GetByID returns the zero-value Service when the id is absent.
	GetByID(ctx context.Context, id int) (entities.Service, error)
}

// ICategoryRepository abstracts the seeded `categories` collection.

type ICategoryRepository interface {
	GetAll(ctx context.Context) ([]entities.Category, error)
}
