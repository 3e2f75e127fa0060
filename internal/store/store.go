// Package store provides the persisted key-value settings store.
//
// Values are JSON documents addressed by key. Mutations stay in memory until
// Save is called; there is no transaction or optimistic-concurrency check, so
// the last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
)

// Store is a get/set blob store backed by some persistence
type Store interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, value any) error
	Save() error
}

// FileStore persists the store as a single JSON file
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]json.RawMessage
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, gderrors.NewStoreError("read", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, gderrors.NewStoreError("read", fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return s, nil
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the raw value for key
func (s *FileStore) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set marshals value and stores it under key
func (s *FileStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return gderrors.NewStoreError("set", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
	return nil
}

// Save writes the store to disk, creating the parent directory if needed
func (s *FileStore) Save() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return gderrors.NewStoreError("save", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return gderrors.NewStoreError("save", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return gderrors.NewStoreError("save", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return gderrors.NewStoreError("save", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return gderrors.NewStoreError("save", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return gderrors.NewStoreError("save", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return gderrors.NewStoreError("save", err)
	}
	return nil
}

// GetString decodes a string value, returning "" when absent or not a string
func GetString(s Store, key string) string {
	raw, ok := s.Get(key)
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// GetStrings decodes a string list, skipping entries that are not strings
func GetStrings(s Store, key string) []string {
	raw, ok := s.Get(key)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var v string
		if err := json.Unmarshal(item, &v); err == nil {
			out = append(out, v)
		}
	}
	return out
}
