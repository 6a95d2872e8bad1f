package prefs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

// BadgerStore persists preferences in an embedded Badger database via
// badgerhold. A single gander process owns the directory; Badger takes
// an exclusive lock on open.
type BadgerStore struct {
	store *badgerhold.Store
}

var _ Store = (*BadgerStore)(nil)

// OpenBadger opens (creating if needed) the preference database under dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("preference store dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preference store dir: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open preference store at %s: %w", dir, err)
	}
	return &BadgerStore{store: store}, nil
}

func (s *BadgerStore) Get(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("preference key is required")
	}

	var pair KeyValuePair
	err := s.store.Get(key, &pair)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	return pair.Value, nil
}

func (s *BadgerStore) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	now := time.Now().UTC()
	pair := KeyValuePair{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Keep the original creation stamp on overwrite.
	var existing KeyValuePair
	if err := s.store.Get(key, &existing); err == nil {
		pair.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Upsert(key, &pair); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) Delete(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	err := s.store.Delete(key, KeyValuePair{})
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) List() ([]KeyValuePair, error) {
	var pairs []KeyValuePair
	query := badgerhold.Where("Key").Ne("").SortBy("UpdatedAt").Reverse()
	if err := s.store.Find(&pairs, query); err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return pairs, nil
}

// Maintain runs one value log garbage collection pass. Badger never
// collects on its own, so a store written to daily grows without this.
// Safe to call from a goroutine; ErrNoRewrite just means there was
// nothing worth rewriting.
func (s *BadgerStore) Maintain() error {
	err := s.store.Badger().RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}

func (s *BadgerStore) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
