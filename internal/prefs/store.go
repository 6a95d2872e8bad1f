package prefs

import (
	"errors"
	"time"
)

// ErrNotFound reports an absent preference key. Callers going through
// the typed schema never see it; Entry.Get folds it into the default.
var ErrNotFound = errors.New("preference key not found")

// KeyValuePair is the stored record shape. Keys are kept verbatim
// (trimmed, case preserved) so the on-disk names match the documented
// preference keys exactly.
type KeyValuePair struct {
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the persistence contract the preference layer builds on.
// Implementations must make a Set observable by the next Get in the
// same process.
type Store interface {
	// Get returns the stored value or ErrNotFound.
	Get(key string) (string, error)
	// Set persists the value immediately.
	Set(key, value string) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(key string) error
	// List returns every stored pair, most recently updated first.
	List() ([]KeyValuePair, error)
	// Close releases the backing resources.
	Close() error
}
