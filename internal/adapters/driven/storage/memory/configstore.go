package memory

import (
	"sync"

	"github.com/custodia-labs/jotter/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map for service and shell tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]string)}
}

// GetString returns the value for key.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// SetString stores value under key.
func (s *ConfigStore) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Path is always empty.
func (s *ConfigStore) Path() string {
	return ""
}
