package kvstore

import (
	"context"
	"sync"

	"github.com/zencool/invoicer/internal/application/port"
)

// MemoryStore is an in-memory KeyValueStore. It backs tests and stands in
// for the durable medium when none is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string]string
	available bool
}

// NewMemoryStore creates an available in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:      make(map[string]string),
		available: true,
	}
}

// NewUnavailableStore creates a store whose medium reports unavailable,
// mimicking a missing persistence medium so reads degrade to empty results.
func NewUnavailableStore() *MemoryStore {
	return &MemoryStore{
		data:      make(map[string]string),
		available: false,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

// Verify interface compliance
var _ port.KeyValueStore = (*MemoryStore)(nil)
