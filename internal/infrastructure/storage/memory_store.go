package storage

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemoryStore is a map-backed Store used by tests and throwaway runs.
// Values round-trip through JSON so it has the same serialization behavior
// as the durable backends.

type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]json.RawMessage{}}
}

func (s *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[KeyPrefix+key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, Failure(err)
	}
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return Failure(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyPrefix+key] = raw
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyPrefix+key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.data {
		if strings.HasPrefix(k, KeyPrefix) {
			delete(s.data, k)
		}
	}
	return nil
}
