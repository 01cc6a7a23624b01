package storage

import (
	"context"
	"errors"
	"fmt"
)

// KeyPrefix namespaces every physical key so unrelated data sharing the same
// backing (file, Redis database, DynamoDB table) cannot collide.
const KeyPrefix = "coffeenet_"

// Well-known logical keys.
const (
	KeyCurrentUser = "current_user"
	KeyTempOTP     = "temp_otp"
	KeyDraftOrder  = "draft_order"
	KeyOrders      = "orders"
	KeyUsers       = "users"
	KeyServices    = "services"
	KeyCategories  = "categories"
	KeyPayments    = "payments" // reserved, unused by the core
)

// ErrStorageFailure marks serialization errors and backing read/write
// failures. It is the only error kind callers should treat as an operational
// concern (e.g. quota exhaustion) rather than a business outcome.
var ErrStorageFailure = errors.New("storage failure")

// Failure wraps err as a storage failure.
func Failure(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

// Store is the persistent key/value contract the whole system sits on.
// Values are arbitrary JSON-serializable structures.
//
// There is no locking and no transaction: concurrent writers race and the
// last write wins. That is tolerated because the target use is a
// single-operator deployment; multi-writer use would require a
// version-stamped compare-and-swap or a single-writer service in front.
type Store interface {
	// Get decodes the value stored under key into out. It reports whether
	// the key was present; absence is not an error.
	Get(ctx context.Context, key string, out any) (bool, error)
	// Set serializes value and writes it under key.
	Set(ctx context.Context, key string, value any) error
	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error
	// Clear deletes every key under the store's prefix.
	Clear(ctx context.Context) error
}
