package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// SessionStore mirrors the current session and the pending one-time code
// into the key/value store so both survive restarts.

type SessionStore struct {
	store storage.Store
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) SaveCurrentUser(ctx context.Context, u entities.User) error {
	return s.store.Set(ctx, storage.KeyCurrentUser, u)
}

func (s *SessionStore) LoadCurrentUser(ctx context.Context) (entities.User, bool, error) {
	var u entities.User
	found, err := s.store.Get(ctx, storage.KeyCurrentUser, &u)
	return u, found, err
}

func (s *SessionStore) ClearCurrentUser(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyCurrentUser)
}

func (s *SessionStore) SavePendingCode(ctx context.Context, p entities.PendingCode) error {
	return s.store.Set(ctx, storage.KeyTempOTP, p)
}

func (s *SessionStore) LoadPendingCode(ctx context.Context) (entities.PendingCode, bool, error) {
	var p entities.PendingCode
	found, err := s.store.Get(ctx, storage.KeyTempOTP, &p)
	return p, found, err
}

func (s *SessionStore) ClearPendingCode(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyTempOTP)
}

// DraftStore persists the single in-progress draft order.

type DraftStore struct {
	store storage.Store
}

var _ interfaces.IDraftStore = (*DraftStore)(nil)

func NewDraftStore(store storage.Store) *DraftStore {
	return &DraftStore{store: store}
}

func (s *DraftStore) SaveDraft(ctx context.Context, o entities.Order) error {
	return s.store.Set(ctx, storage.KeyDraftOrder, o)
}

func (s *DraftStore) LoadDraft(ctx context.Context) (entities.Order, bool, error) {
	var o entities.Order
	found, err := s.store.Get(ctx, storage.KeyDraftOrder, &o)
	return o, found, err
}

func (s *DraftStore) ClearDraft(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyDraftOrder)
}
