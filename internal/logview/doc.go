// Package logview implements the log table's view-state machine.
//
// # Overview
//
// State owns everything the table derives from an in-memory entry
// list: a global substring filter, per-column substring filters, a
// single-key stable sort, column visibility, and pagination. The
// owning page drives the loading/error/ready lifecycle; State only
// answers "which rows, in which order, on which page" once entries
// are in hand.
//
// # Derivation Model
//
// Every operation recomputes the derived row set from scratch:
//
//	entries (immutable)
//	   │  global filter (case-insensitive, serialized row form)
//	   │  column filters (AND, per-field)
//	   ▼
//	filtered indexes ── stable sort by active column ──▶ rows
//	                                                      │ page window
//	                                                      ▼
//	                                                   Rows()
//
// Recompute-not-patch keeps the invariants trivially true: filters,
// sort, and page can never disagree about the row set, and the input
// entries are never touched. The cost is linear in the entry count,
// which for a day of logs per service is nowhere near mattering.
//
// # Operation Semantics
//
//   - Global and column filters match case-insensitive substrings;
//     column filters compose with AND, and order of application never
//     changes membership.
//   - One sort key at a time. Cycling a column goes ascending →
//     descending → none; descending is produced by reversing the
//     stable ascending order, so it is its exact mirror, ties included.
//     None restores source order.
//   - Visibility is presentational. Hidden columns still participate
//     in the global filter and keep any column filter they carry.
//   - The page index clamps to [0, PageCount-1]. Filter and sort
//     changes reset to page 0 only when the current page would fall
//     out of range; page-size changes clamp.
//
// # Column Derivation
//
// Columns are the union of fields the entries carry: well-known core
// fields in canonical order, then extra keys sorted. A fresh fetch
// re-derives the set, so a day with requestId data grows the column
// and a day without it drops it.
//
// # Testing Considerations
//
// State is pure and synchronous; tests drive it directly with
// fabricated entries and assert on Rows, FilteredCount, PageCount, and
// the sort/filter accessors. No goroutines, no time, no I/O.
package logview
