package entities

import "time"

// UserRole distinguishes storefront customers from panel operators.
//
// Authorization in this system is intentionally nothing more than a role
// string check (see admin routes); anything richer is out of scope.

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

// User is an account record persisted in the `users` collection.
//
// Storage model (key/value store):
//   - whole `users` collection stored as one JSON array under the store prefix
//
// Invariant: phone is unique across users once assigned. The repositories
// enforce it with a lookup-before-create; there is no index.
//
// PasswordHash is a bcrypt hash. Accounts provisioned through the one-time
// code flow have no password until the profile sets one.

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// PendingCode is the stored one-time login code awaiting verification.
// It lives under the `temp_otp` key and is never delivered anywhere;
// preparing and storing the record is the whole job (delivery is an
// external collaborator).

type PendingCode struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expires"`
}

func (p PendingCode) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
