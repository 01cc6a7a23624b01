package interfaces

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

// IUserRepository abstracts the `users` collection.
//
// Lookups return the zero-value User when nothing matches; absence is not an
// error at this layer. Every mutation is a whole-collection
// read-modify-write (small demo corpora; documented on the implementation).

type IUserRepository interface {
	GetAll(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByPhone(ctx context.Context, phone string) (entities.User, error)
	// FindByLogin matches a user whose email or phone equals login.
	FindByLogin(ctx context.Context, login string) (entities.User, error)
	Add(ctx context.Context, u entities.User) error
	// Update replaces the record with the given id. The zero-value User is
	// returned when the id is absent.
	Update(ctx context.Context, id string, u entities.User) (entities.User, error)
}
