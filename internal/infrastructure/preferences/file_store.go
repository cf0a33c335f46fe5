package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

const fileVersion = "1.0"

// ErrCorrupt is returned by Load when the file is not a valid preference file.
var ErrCorrupt = errors.New("failed to parse preferences")

// File is the on-disk layout of the preference file.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore keeps preferences in a JSON file. Every Set is written through
// to disk atomically before it becomes visible to Get.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

var _ ports.PreferenceStore = (*FileStore)(nil)

// NewFileStore opens the store at path, creating its directory. A missing
// file yields an empty store. So does a corrupt one: the problem is logged
// and the next Set replaces the file. log may be nil.
func NewFileStore(path string, log ports.Logger) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	err := s.Load()
	switch {
	case err == nil, os.IsNotExist(err):
	case errors.Is(err, ErrCorrupt):
		if log != nil {
			log.Warn(context.Background(), "ignoring unreadable preferences file", "path", path, "error", err)
		}
	default:
		return nil, err
	}

	return s, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory values with the file contents.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and persists the file. On a write failure the
// previous value is restored.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, had := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		if had {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// save must be called with mu held.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(File{Version: fileVersion, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
