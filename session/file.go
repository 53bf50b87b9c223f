package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	agentone "github.com/agentone/agentone-go"
)

// fileStore persists keys as a single JSON document on disk, replacing the
// whole file on every write. One namespace, string keys, string values.
type fileStore struct {
	mu   sync.Mutex
	path string
}

func newFileStore(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &fileStore{path: filepath.Join(dir, "session.json")}, nil
}

// Get implements Store.
func (s *fileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	value, exists := values[key]
	if !exists {
		return "", agentone.ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (s *fileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete implements Store.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := values[key]; !exists {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// Close implements Store.
func (s *fileStore) Close() error {
	return nil
}

func (s *fileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		// A corrupt state file behaves like an empty one; the next write
		// replaces it wholesale.
		return map[string]string{}, nil
	}
	return values, nil
}

// Compile-time check that fileStore implements Store.
var _ Store = (*fileStore)(nil)

func (s *fileStore) save(values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
