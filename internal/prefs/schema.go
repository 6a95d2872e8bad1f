package prefs

import (
	"strconv"

	"github.com/calvale/gander/internal/timefmt"
)

// Entry couples a preference key with its Go type, its default, and the
// string codec used on disk. Reads never fail: an absent key or a value
// that no longer decodes (edited by hand, written by an older build)
// falls back to the default, and the next Set repairs the stored value.
type Entry[T any] struct {
	Key     string
	Default T
	decode  func(string) (T, error)
	encode  func(T) string
}

// Get returns the stored value, or the default when the key is absent
// or undecodable.
func (e Entry[T]) Get(store Store) T {
	raw, err := store.Get(e.Key)
	if err != nil {
		return e.Default
	}
	value, err := e.decode(raw)
	if err != nil {
		return e.Default
	}
	return value
}

// Set persists the value under the entry's key.
func (e Entry[T]) Set(store Store, value T) error {
	return store.Set(e.Key, e.encode(value))
}

func stringEntry(key, def string) Entry[string] {
	return Entry[string]{
		Key:     key,
		Default: def,
		decode:  func(raw string) (string, error) { return raw, nil },
		encode:  func(value string) string { return value },
	}
}

func intEntry(key string, def int) Entry[int] {
	return Entry[int]{
		Key:     key,
		Default: def,
		decode:  strconv.Atoi,
		encode:  strconv.Itoa,
	}
}

func boolEntry(key string, def bool) Entry[bool] {
	return Entry[bool]{
		Key:     key,
		Default: def,
		decode:  strconv.ParseBool,
		encode:  strconv.FormatBool,
	}
}

// Schema declares every persisted display and AI preference. The zero
// Schema is not usable; construct it with DefaultSchema.
type Schema struct {
	PageSize        Entry[int]
	ShowLineNumbers Entry[bool]
	DateFormat      Entry[string]
	TimeFormat      Entry[string]
	Timezone        Entry[string]
	AIModel         Entry[string]
	AICredential    Entry[string]
}

// DefaultSchema returns the full preference schema with its defaults.
// Key names are the on-disk truth; changing one orphans stored values.
func DefaultSchema() Schema {
	return Schema{
		PageSize:        intEntry("pageSize", 10),
		ShowLineNumbers: boolEntry("showLineNumbers", true),
		DateFormat:      stringEntry("dateFormat", timefmt.DateISO),
		TimeFormat:      stringEntry("timeFormat", timefmt.Time24hSec),
		Timezone:        stringEntry("timezone", "UTC"),
		AIModel:         stringEntry("aiModel", "claude-sonnet-4-20250514"),
		AICredential:    stringEntry("aiApiKey", ""),
	}
}
