package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as its own JSON document in a directory.
// Every Set rewrites the key's file in full; there is no batching and no
// cross-key atomicity.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) keyPath(key string) (string, error) {
	// Keys are fixed collection names, but keep path traversal impossible.
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Get(key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, value, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Path() string {
	return s.dir
}
