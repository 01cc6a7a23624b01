package repository

import (
	"context"

	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
)

// loadCollection reads a whole collection blob. An uninitialized key yields
// an empty slice, not an error.
func loadCollection[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	var items []T
	if _, err := store.Get(ctx, key, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection writes a whole collection blob back.
func saveCollection[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	return store.Set(ctx, key, items)
}
