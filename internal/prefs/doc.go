// Package prefs persists gander's display and AI preferences in an
// embedded key-value store.
//
// # Overview
//
// Preferences survive restarts: page size, line numbers, date/time
// formats, timezone, the AI model and credential, and the configured
// service list all come back exactly as the user left them. The
// backing store is a Badger database managed through badgerhold, kept
// under the data directory from the config file.
//
// # Typed Schema
//
// Raw store access is stringly typed, so the package layers a typed
// schema on top:
//
//	schema := prefs.DefaultSchema()
//	size := schema.PageSize.Get(store)      // int, 10 on a fresh store
//	err := schema.PageSize.Set(store, 25)
//
// Each Entry pairs a key with its default and codec. Get never returns
// an error: absent keys and values that fail to decode yield the
// default, and the next Set writes a clean value. That mirrors how the
// dashboard should behave when the store is missing or damaged; a bad
// preference database must never take the log view down with it.
//
// # Stores
//
// Two Store implementations exist. BadgerStore is the real one.
// MemoryStore holds everything in a map and backs the session when the
// database directory cannot be opened, trading persistence for
// availability.
//
// # Design Rationale
//
// Keys are stored verbatim ("pageSize", not "pagesize") so the on-disk
// names match the documented preference keys and stay greppable in
// debug dumps. The service list is one JSON value under "services"
// rather than a row per service; the list is small, always read and
// written whole, and a single value keeps add/edit/remove atomic.
//
// # Testing Considerations
//
// MemoryStore gives tests a Store with zero filesystem footprint.
// BadgerStore tests use t.TempDir and reopen the database to prove
// values actually persist.
package prefs
