package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps preferences in process memory. It backs the
// dashboard when the Badger directory cannot be opened (locked by
// another instance, read-only filesystem) so the session still works;
// changes are simply lost on exit.
type MemoryStore struct {
	mu    sync.RWMutex
	pairs map[string]KeyValuePair
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pairs: make(map[string]KeyValuePair)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("preference key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.pairs[key]
	if !ok {
		return "", ErrNotFound
	}
	return pair.Value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	pair := KeyValuePair{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	if existing, ok := s.pairs[key]; ok {
		pair.CreatedAt = existing.CreatedAt
	}
	s.pairs[key] = pair
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pairs, key)
	return nil
}

func (s *MemoryStore) List() ([]KeyValuePair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pairs := make([]KeyValuePair, 0, len(s.pairs))
	for _, pair := range s.pairs {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].UpdatedAt.After(pairs[j].UpdatedAt)
	})
	return pairs, nil
}

func (s *MemoryStore) Close() error { return nil }
