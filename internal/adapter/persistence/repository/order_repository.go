package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// OrderStoreRepository keeps the submitted `orders` collection as one JSON
// array in the key/value store. Same O(n) read-modify-write caveat as the
// user repository.

type OrderStoreRepository struct {
	store storage.Store
}

var _ interfaces.IOrderRepository = (*OrderStoreRepository)(nil)

func NewOrderStoreRepository(store storage.Store) *OrderStoreRepository {
	return &OrderStoreRepository{store: store}
}

func (r *OrderStoreRepository) GetAll(ctx context.Context) ([]entities.Order, error) {
	return loadCollection[entities.Order](ctx, r.store, storage.KeyOrders)
}

func (r *OrderStoreRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderStoreRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.Order{}
	for _, o := range orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderStoreRepository) Add(ctx context.Context, o entities.Order) error {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, o)
	return saveCollection(ctx, r.store, storage.KeyOrders, orders)
}

func (r *OrderStoreRepository) Update(ctx context.Context, id string, o entities.Order) (entities.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o.ID = id
			orders[i] = o
			if err := saveCollection(ctx, r.store, storage.KeyOrders, orders); err != nil {
				return entities.Order{}, err
			}
			return o, nil
		}
	}
	return entities.Order{}, nil
}
