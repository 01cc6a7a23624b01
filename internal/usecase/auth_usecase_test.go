package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	mock_interfaces "github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_RequestCode(t *testing.T) {
	t.Run("invalid phone", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if err := uc.RequestCode(context.Background(), "abc"); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("stores pending code with expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)

		var stored entities.PendingCode
		session.EXPECT().SavePendingCode(gomock.Any(), gomock.AssignableToTypeOf(entities.PendingCode{})).DoAndReturn(
			func(_ context.Context, p entities.PendingCode) error {
				stored = p
				return nil
			},
		)

		if err := uc.RequestCode(context.Background(), "0912-000 0000"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Phone != "09120000000" {
			t.Fatalf("expected normalized phone, got %q", stored.Phone)
		}
		if len(stored.Code) != 6 {
			t.Fatalf("expected 6-digit code, got %q", stored.Code)
		}
		ttl := time.Until(stored.ExpiresAt)
		if ttl < 4*time.Minute || ttl > 5*time.Minute {
			t.Fatalf("unexpected expiry window: %v", ttl)
		}
	})
}

func TestAuthUseCase_VerifyCode(t *testing.T) {
	pending := entities.PendingCode{Phone: "09120000000", Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}

	t.Run("no pending record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		session.EXPECT().LoadPendingCode(gomock.Any()).Return(entities.PendingCode{}, false, nil)

		if _, err := uc.VerifyCode(context.Background(), "123456"); !errors.Is(err, ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})

	t.Run("expired record fails regardless of correctness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		stale := pending
		stale.ExpiresAt = time.Now().Add(-time.Second)
		session.EXPECT().LoadPendingCode(gomock.Any()).Return(stale, true, nil)

		if _, err := uc.VerifyCode(context.Background(), "123456"); !errors.Is(err, ErrCodeExpired) {
			t.Fatalf("expected ErrCodeExpired, got %v", err)
		}
	})

	t.Run("mismatch keeps the pending record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		// ClearPendingCode is deliberately not expected here.
		session.EXPECT().LoadPendingCode(gomock.Any()).Return(pending, true, nil)

		if _, err := uc.VerifyCode(context.Background(), "654321"); !errors.Is(err, ErrCodeMismatch) {
			t.Fatalf("expected ErrCodeMismatch, got %v", err)
		}
	})

	t.Run("match with existing user reuses the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(users, session)

		existing := entities.User{ID: "u-1", Phone: "09120000000", Role: entities.UserRoleCustomer}
		session.EXPECT().LoadPendingCode(gomock.Any()).Return(pending, true, nil)
		users.EXPECT().GetByPhone(gomock.Any(), "09120000000").Return(existing, nil)
		session.EXPECT().SaveCurrentUser(gomock.Any(), existing).Return(nil)
		session.EXPECT().ClearPendingCode(gomock.Any()).Return(nil)

		got, err := uc.VerifyCode(context.Background(), "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u-1" {
			t.Fatalf("expected existing user, got %+v", got)
		}
	})

	t.Run("match with unknown phone auto-provisions a customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(users, session)

		session.EXPECT().LoadPendingCode(gomock.Any()).Return(pending, true, nil)
		users.EXPECT().GetByPhone(gomock.Any(), "09120000000").Return(entities.User{}, nil)
		users.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) error {
				if u.ID == "" || u.Phone != "09120000000" || u.Role != entities.UserRoleCustomer {
					t.Fatalf("unexpected provisioned user: %+v", u)
				}
				if u.Email != "" || u.Name == "" {
					t.Fatalf("unexpected provisioned profile: %+v", u)
				}
				return nil
			},
		)
		session.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)
		session.EXPECT().ClearPendingCode(gomock.Any()).Return(nil)

		got, err := uc.VerifyCode(context.Background(), "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Role != entities.UserRoleCustomer {
			t.Fatalf("expected customer role, got %+v", got)
		}
	})
}

func TestAuthUseCase_LoginWithCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	account := entities.User{ID: "u-1", Email: "ali@example.com", Phone: "09120000000", PasswordHash: string(hash)}

	t.Run("unknown login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().FindByLogin(gomock.Any(), "nobody").Return(entities.User{}, nil)

		if _, err := uc.LoginWithCredentials(context.Background(), "nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().FindByLogin(gomock.Any(), "ali@example.com").Return(account, nil)

		if _, err := uc.LoginWithCredentials(context.Background(), "ali@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success by phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(users, session)
		users.EXPECT().FindByLogin(gomock.Any(), "09120000000").Return(account, nil)
		session.EXPECT().SaveCurrentUser(gomock.Any(), account).Return(nil)

		got, err := uc.LoginWithCredentials(context.Background(), "09120000000", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", got)
		}
		if !uc.IsAuthenticated(context.Background()) {
			t.Fatalf("expected authenticated session")
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterInput{Name: "علی", Phone: "09120000000", Password: "12345"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterInput{Name: "علی", Phone: "12ab", Password: "123456"})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().GetByPhone(gomock.Any(), "09120000000").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), RegisterInput{Name: "علی", Phone: "09120000000", Password: "123456"})
		if !errors.Is(err, ErrPhoneAlreadyRegistered) {
			t.Fatalf("expected ErrPhoneAlreadyRegistered, got %v", err)
		}
	})

	t.Run("success hashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().GetByPhone(gomock.Any(), "09120000000").Return(entities.User{}, nil)
		users.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).Return(nil)

		got, err := uc.Register(context.Background(), RegisterInput{Name: "علی", Phone: "0912 000-0000", Password: "123456"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PasswordHash == "" || got.PasswordHash == "123456" {
			t.Fatalf("expected hashed password, got %q", got.PasswordHash)
		}
		if bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("123456")) != nil {
			t.Fatalf("hash does not verify")
		}
		if got.Role != entities.UserRoleCustomer {
			t.Fatalf("expected customer role, got %s", got.Role)
		}
	})
}

func TestAuthUseCase_Session(t *testing.T) {
	t.Run("current user rehydrates from the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		stored := entities.User{ID: "u-1", Role: entities.UserRoleAdmin}
		// A single load feeds subsequent queries from memory.
		session.EXPECT().LoadCurrentUser(gomock.Any()).Return(stored, true, nil).Times(1)

		got, ok := uc.CurrentUser(context.Background())
		if !ok || got.ID != "u-1" {
			t.Fatalf("expected rehydrated session, got %+v ok=%v", got, ok)
		}
		if !uc.IsAdmin(context.Background()) {
			t.Fatalf("expected admin session")
		}
	})

	t.Run("logout clears memory and mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		session.EXPECT().LoadCurrentUser(gomock.Any()).Return(entities.User{ID: "u-1"}, true, nil).Times(1)
		if _, ok := uc.CurrentUser(context.Background()); !ok {
			t.Fatalf("expected session")
		}

		session.EXPECT().ClearCurrentUser(gomock.Any()).Return(nil)
		if err := uc.Logout(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		session.EXPECT().LoadCurrentUser(gomock.Any()).Return(entities.User{}, false, nil)
		if _, ok := uc.CurrentUser(context.Background()); ok {
			t.Fatalf("expected no session after logout")
		}
	})
}

func TestAuthUseCase_UpdateProfile(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, session)
		session.EXPECT().LoadCurrentUser(gomock.Any()).Return(entities.User{}, false, nil)

		name := "x"
		if _, err := uc.UpdateProfile(context.Background(), ProfilePatch{Name: &name}); !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("updates record and session mirror together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		session := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(users, session)

		current := entities.User{ID: "u-1", Name: "مشتری جدید", Role: entities.UserRoleCustomer}
		session.EXPECT().LoadCurrentUser(gomock.Any()).Return(current, true, nil).Times(1)
		users.EXPECT().Update(gomock.Any(), "u-1", gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, id string, u entities.User) (entities.User, error) {
				if u.Name != "علی رضایی" || u.Email != "ali@example.com" {
					t.Fatalf("unexpected merged user: %+v", u)
				}
				if u.UpdatedAt.IsZero() {
					t.Fatalf("expected updated timestamp")
				}
				return u, nil
			},
		)
		session.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)

		name, email := "علی رضایی", "ali@example.com"
		got, err := uc.UpdateProfile(context.Background(), ProfilePatch{Name: &name, Email: &email})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "علی رضایی" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
