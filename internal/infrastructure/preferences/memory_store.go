package preferences

import (
	"sync"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

// MemoryStore is a PreferenceStore that lives only for the process. SetErr,
// when non-nil, is returned by every Set without storing anything.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	SetErr error
}

var _ ports.PreferenceStore = (*MemoryStore)(nil)

// NewMemoryStore returns a store seeded with initial.
func NewMemoryStore(initial map[string]string) *MemoryStore {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	return nil
}
