package interfaces

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

// ISessionStore persists the session mirror (`current_user`) and the pending
// one-time code (`temp_otp`) so both survive restarts.

type ISessionStore interface {
	SaveCurrentUser(ctx context.Context, u entities.User) error
	LoadCurrentUser(ctx context.Context) (entities.User, bool, error)
	ClearCurrentUser(ctx context.Context) error

	SavePendingCode(ctx context.Context, p entities.PendingCode) error
	LoadPendingCode(ctx context.Context) (entities.PendingCode, bool, error)
	ClearPendingCode(ctx context.Context) error
}

// IDraftStore persists the single in-progress draft order (`draft_order`).

type IDraftStore interface {
	SaveDraft(ctx context.Context, o entities.Order) error
	LoadDraft(ctx context.Context) (entities.Order, bool, error)
	ClearDraft(ctx context.Context) error
}
