package store

import (
	"encoding/json"
	"sync"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
)

// MemoryStore is an in-memory Store used in tests
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage
	saved  map[string]json.RawMessage

	// SaveErr, when set, is returned (wrapped) by Save
	SaveErr error
	// Saves counts successful Save calls
	Saves int
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]json.RawMessage),
		saved:  make(map[string]json.RawMessage),
	}
}

// Get returns the raw value for key
func (s *MemoryStore) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set marshals value and stores it under key
func (s *MemoryStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return gderrors.NewStoreError("set", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return nil
}

// Save snapshots the current values as persisted
func (s *MemoryStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return gderrors.NewStoreError("save", s.SaveErr)
	}
	s.saved = make(map[string]json.RawMessage, len(s.values))
	for k, v := range s.values {
		s.saved[k] = v
	}
	s.Saves++
	return nil
}

// Saved returns the persisted value for key as of the last successful Save
func (s *MemoryStore) Saved(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.saved[key]
	return v, ok
}
