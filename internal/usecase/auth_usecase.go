package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrCodeExpired            = errors.New("verification code expired")
	ErrCodeMismatch           = errors.New("verification code mismatch")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrInvalidPhone           = errors.New("invalid phone number")
	ErrWeakPassword           = errors.New("weak password")
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
)

const (
	codeTTL           = 5 * time.Minute
	minPasswordLength = 6
	defaultUserName   = "مشتری جدید"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// RegisterInput is the payload for credential-based account creation.

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
}

// ProfilePatch carries partial profile updates; nil fields are left as-is.

type ProfilePatch struct {
	Name     *string
	Email    *string
	Password *string
}

// IAuthUseCase manages the session: one-time-code login, credential login,
// registration and profile updates, all over the user repository and the
// persisted session mirror.

type IAuthUseCase interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, enteredCode string) (entities.User, error)
	LoginWithCredentials(ctx context.Context, login, password string) (entities.User, error)
	Register(ctx context.Context, in RegisterInput) (entities.User, error)
	ForgotPassword(ctx context.Context, phone string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (entities.User, bool)
	IsAdmin(ctx context.Context) bool
	UpdateProfile(ctx context.Context, patch ProfilePatch) (entities.User, error)
}

// AuthUseCase holds the currently authenticated user in memory, mirrored to
// the session store so it survives restarts. This is a single-operator
// session, exactly one per process.

type AuthUseCase struct {
	users   interfaces.IUserRepository
	session interfaces.ISessionStore

	mu      sync.Mutex
	current *entities.User
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, session interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{users: users, session: session}
}

func normalizePhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(phone))
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// RequestCode prepares a pending verification record: a uniformly random
// 6-digit code bound to the phone number with an absolute expiry. Delivery
// is an external collaborator; the code only reaches the log.
func (u *AuthUseCase) RequestCode(ctx context.Context, phone string) error {
	phone = normalizePhone(phone)
	if !validPhone(phone) {
		return ErrInvalidPhone
	}

	code := fmt.Sprintf("%d", 100000+rand.Intn(900000))
	pending := entities.PendingCode{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := u.session.SavePendingCode(ctx, pending); err != nil {
		logger.Error().Err(err).Msg("failed storing pending verification code")
		return err
	}

	logger.Info().Str("phone", phone).Str("otp", code).Msg("verification code prepared")
	return nil
}

// VerifyCode checks the entered code against the pending record. On match it
// resolves the user by phone, auto-provisioning a fresh customer account on
// first login, establishes the session and clears the pending record.
// A mismatch leaves the pending record in place so the caller can retry.
func (u *AuthUseCase) VerifyCode(ctx context.Context, enteredCode string) (entities.User, error) {
	pending, found, err := u.session.LoadPendingCode(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if !found || pending.Expired(time.Now()) {
		return entities.User{}, ErrCodeExpired
	}
	if pending.Code != strings.TrimSpace(enteredCode) {
		return entities.User{}, ErrCodeMismatch
	}

	user, err := u.users.GetByPhone(ctx, pending.Phone)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		// First login for this phone: auto-provision a customer account.
		// This is a deliberate design choice, not an error path.
		user = entities.User{
			ID:        uuid.NewString(),
			Name:      defaultUserName,
			Phone:     pending.Phone,
			Email:     "",
			Role:      entities.UserRoleCustomer,
			CreatedAt: time.Now(),
		}
		if err := u.users.Add(ctx, user); err != nil {
			return entities.User{}, err
		}
		logger.Info().Str("user_id", user.ID).Str("phone", user.Phone).Msg("auto-provisioned customer account")
	}

	if err := u.setSession(ctx, user); err != nil {
		return entities.User{}, err
	}
	if err := u.session.ClearPendingCode(ctx); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// LoginWithCredentials matches a user by email or phone and compares the
// password against the stored bcrypt hash.
func (u *AuthUseCase) LoginWithCredentials(ctx context.Context, login, password string) (entities.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" || user.PasswordHash == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	if err := u.setSession(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// Register creates a credential-based customer account. The phone number
// must be unique; the password is stored as a bcrypt hash only.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	phone := normalizePhone(in.Phone)
	if name == "" || !validPhone(phone) {
		return entities.User{}, ErrInvalidPhone
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}

	existing, err := u.users.GetByPhone(ctx, phone)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrPhoneAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Role:         entities.UserRoleCustomer,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := u.users.Add(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// ForgotPassword always reports success so phone numbers cannot be
// enumerated. An existing account would receive a reset message through the
// out-of-scope delivery collaborator; here the request is only logged.
func (u *AuthUseCase) ForgotPassword(ctx context.Context, phone string) error {
	phone = normalizePhone(phone)
	if !validPhone(phone) {
		return ErrInvalidPhone
	}
	user, err := u.users.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user.ID != "" {
		logger.Info().Str("user_id", user.ID).Msg("password reset requested")
	}
	return nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()
	return u.session.ClearCurrentUser(ctx)
}

func (u *AuthUseCase) IsAuthenticated(ctx context.Context) bool {
	_, ok := u.CurrentUser(ctx)
	return ok
}

// CurrentUser returns the session user, lazily rehydrating from the session
// store after a restart.
func (u *AuthUseCase) CurrentUser(ctx context.Context) (entities.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current != nil {
		return *u.current, true
	}
	user, found, err := u.session.LoadCurrentUser(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed rehydrating session")
		return entities.User{}, false
	}
	if !found || user.ID == "" {
		return entities.User{}, false
	}
	u.current = &user
	return user, true
}

func (u *AuthUseCase) IsAdmin(ctx context.Context) bool {
	user, ok := u.CurrentUser(ctx)
	return ok && user.IsAdmin()
}

// UpdateProfile merges the patch into the current user, persists it through
// the repository and refreshes the session mirror. Both copies are updated
// together; callers must not assume they can diverge.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, patch ProfilePatch) (entities.User, error) {
	user, ok := u.CurrentUser(ctx)
	if !ok {
		return entities.User{}, ErrNotAuthenticated
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		user.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLength {
			return entities.User{}, ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	updated, err := u.users.Update(ctx, user.ID, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrNotAuthenticated
	}

	if err := u.setSession(ctx, updated); err != nil {
		return entities.User{}, err
	}
	return updated, nil
}

func (u *AuthUseCase) setSession(ctx context.Context, user entities.User) error {
	if err := u.session.SaveCurrentUser(ctx, user); err != nil {
		logger.Error().Err(err).Msg("failed persisting session mirror")
		return err
	}
	u.mu.Lock()
	u.current = &user
	u.mu.Unlock()
	return nil
}
