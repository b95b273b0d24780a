// Package local stores image objects as files under a directory, for
// development without an S3 bucket.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

type Store struct {
	basePath string
	mu       sync.RWMutex
}

func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("base path cannot be empty")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	return &Store{basePath: basePath}, nil
}

func (s *Store) path(key string) (string, error) {
	path := filepath.Join(s.basePath, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(s.basePath)+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid key %q", key)
	}

	return path, nil
}

func (s *Store) Put(_ context.Context, key string, data []byte, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return write(path, data)
}

func (s *Store) Copy(_ context.Context, from string, to string) error {
	source, err := s.path(from)
	if err != nil {
		return err
	}

	destination, err := s.path(to)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	return write(destination, data)
}

// Get reads one object. Directories and keys outside the root read as
// missing.
func (s *Store) Get(key string) ([]byte, bool) {
	path, err := s.path(key)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return data, true
}

func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		path, err := s.path(key)
		if err != nil {
			return err
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete image file: %w", err)
		}
	}

	return nil
}

// List walks the directory and returns slash separated keys under prefix.
func (s *Store) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string

	err := filepath.WalkDir(s.basePath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		relative, err := filepath.Rel(s.basePath, path)
		if err != nil {
			return err
		}

		key := filepath.ToSlash(relative)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)

	return keys, nil
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // images are public
		return fmt.Errorf("failed to write image file: %w", err)
	}

	return nil
}
