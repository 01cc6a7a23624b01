package interfaces

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

// IOrderRepository abstracts the durable `orders` collection (submitted
// orders only; the in-progress draft lives behind IDraftStore).

type IOrderRepository interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
	// GetByID returns the zero-value Order when the id is absent.
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	Add(ctx context.Context, o entities.Order) error
	// Update replaces the record with the given id. The zero-value Order is
	// returned when the id is absent.
	Update(ctx context.Context, id string, o entities.Order) (entities.Order, error)
}
