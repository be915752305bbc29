package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
)

// Ensure KeyValueStore implements the interface.
var _ driven.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is an in-memory implementation of driven.KeyValueStore.
// Values are copied on the way in and out so callers cannot mutate the
// stored bytes.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewKeyValueStore creates a new in-memory key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		values: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (s *KeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(val), true, nil
}

// Set overwrites the value stored under key.
func (s *KeyValueStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = cloneBytes(value)
	s.writes++
	return nil
}

// Path returns the medium location.
func (s *KeyValueStore) Path() string {
	return ":memory:"
}

// Writes returns how many times Set has been called.
func (s *KeyValueStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
