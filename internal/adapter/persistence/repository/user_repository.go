package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// UserStoreRepository keeps the `users` collection as one JSON array in the
// key/value store.
//
// Every operation is an O(n) read-modify-write of the whole collection.
// That is acceptable only because the expected corpus is small (demo data);
// a real storage engine would replace this with keyed per-entity operations
// behind the same contract.

type UserStoreRepository struct {
	store storage.Store
}

var _ interfaces.IUserRepository = (*UserStoreRepository)(nil)

func NewUserStoreRepository(store storage.Store) *UserStoreRepository {
	return &UserStoreRepository{store: store}
}

func (r *UserStoreRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	return loadCollection[entities.User](ctx, r.store, storage.KeyUsers)
}

func (r *UserStoreRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return r.find(ctx, func(u entities.User) bool { return u.ID == id })
}

func (r *UserStoreRepository) GetByPhone(ctx context.Context, phone string) (entities.User, error) {
	return r.find(ctx, func(u entities.User) bool { return u.Phone == phone })
}

func (r *UserStoreRepository) FindByLogin(ctx context.Context, login string) (entities.User, error) {
	return r.find(ctx, func(u entities.User) bool {
		return (u.Email != "" && u.Email == login) || (u.Phone != "" && u.Phone == login)
	})
}

func (r *UserStoreRepository) find(ctx context.Context, match func(entities.User) bool) (entities.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserStoreRepository) Add(ctx context.Context, u entities.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	return saveCollection(ctx, r.store, storage.KeyUsers, users)
}

func (r *UserStoreRepository) Update(ctx context.Context, id string, u entities.User) (entities.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for i := range users {
		if users[i].ID == id {
			u.ID = id
			users[i] = u
			if err := saveCollection(ctx, r.store, storage.KeyUsers, users); err != nil {
				return entities.User{}, err
			}
			return u, nil
		}
	}
	return entities.User{}, nil
}
