package usecase

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// IUsersUseCase exposes the account list to the admin panel.

type IUsersUseCase interface {
	ListAll(ctx context.Context) ([]entities.User, error)
}

type UsersUseCase struct {
	users interfaces.IUserRepository
}

var _ IUsersUseCase = (*UsersUseCase)(nil)

func NewUsersUseCase(users interfaces.IUserRepository) *UsersUseCase {
	return &UsersUseCase{users: users}
}

func (u *UsersUseCase) ListAll(ctx context.Context) ([]entities.User, error) {
	return u.users.GetAll(ctx)
}
