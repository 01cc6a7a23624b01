package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps the whole keyspace as one JSON document on disk, written
// through on every mutation. It is the server-side analog of the browser
// profile the original storefront persisted into: one small private
// database per installation, no sharing, no transactions.
//
// The mutex serializes access within this process only; a second process
// pointed at the same file races last-write-wins, as the Store contract
// allows.

type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or lazily creates) the store file at path.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, Failure(err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, Failure(err)
	}
	if len(data) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, Failure(err)
	}
	return m, nil
}

func (s *FileStore) flush(m map[string]json.RawMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return Failure(err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return Failure(err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return false, err
	}
	raw, ok := m[KeyPrefix+key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, Failure(err)
	}
	return true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return Failure(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[KeyPrefix+key] = raw
	return s.flush(m)
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	delete(m, KeyPrefix+key)
	return s.flush(m)
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	for k := range m {
		if strings.HasPrefix(k, KeyPrefix) {
			delete(m, k)
		}
	}
	return s.flush(m)
}
