package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/jotter/internal/core/ports/driven"
)

// ConfigFile is the name of the configuration file within the config directory.
const ConfigFile = "config.toml"

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a TOML file. A dotted key names a table
// path, so "notes.default_colour" is stored as
//
//	[notes]
//	default_colour = "blue"
//
// Tables and values it does not know about are preserved on write.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	doc  map[string]any
}

// NewConfigStore opens the config in configDir, creating the directory
// if needed. An empty configDir means ~/.jotter. A missing file is an
// empty configuration.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".jotter")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{path: filepath.Join(configDir, ConfigFile)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetString returns the string at key, or "" if it is unset or holds
// another TOML type.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, leaf := s.table(key, false)
	if table == nil {
		return ""
	}
	str, _ := table[leaf].(string)
	return str
}

// SetString stores value at key and rewrites the file.
func (s *ConfigStore) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, leaf := s.table(key, true)
	if table == nil {
		return fmt.Errorf("config key %q: parent is not a table", key)
	}
	table[leaf] = value
	return s.save()
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// table walks the dotted key down to the table holding its last
// segment. With create, missing tables are added. Returns nil if a
// segment is occupied by a non-table value or is missing.
func (s *ConfigStore) table(key string, create bool) (map[string]any, string) {
	parts := strings.Split(key, ".")
	node := s.doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part]
		if !ok {
			if !create {
				return nil, ""
			}
			child := make(map[string]any)
			node[part] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, ""
		}
		node = child
	}
	return node, parts[len(parts)-1]
}

func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.doc = make(map[string]any)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	doc := make(map[string]any)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.doc = doc
	return nil
}

// save writes through a temp file so a crash never leaves half a config.
// Caller holds the lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
