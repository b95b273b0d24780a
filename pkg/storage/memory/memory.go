// Package memory is an in-process object store for tests and throwaway
// runs.
package memory

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("object not found")

type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func New() *Store {
	return &Store{objects: map[string][]byte{}}
}

func (s *Store) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[key] = slices.Clone(data)

	return nil
}

func (s *Store) Copy(_ context.Context, from string, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[from]
	if !ok {
		return ErrNotFound
	}

	s.objects[to] = slices.Clone(data)

	return nil
}

func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.objects, key)
	}

	return nil
}

// List returns the keys under prefix in lexical order.
func (s *Store) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string

	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	return keys, nil
}

func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]

	return data, ok
}
