package logview

import (
	"encoding/json"
	"strings"

	"github.com/calvale/gander/internal/logsource"
)

// SortDirection is the table's sort state for the active column.
type SortDirection int

const (
	// SortNone leaves rows in the order the source returned them.
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// State is the table's view-state machine: filters, sort, column
// visibility, and pagination over an in-memory entry list. Every
// operation recomputes the derived row set from scratch; the input
// entries are never mutated, so filter, sort, and page state cannot
// drift out of sync with each other.
type State struct {
	entries []logsource.Entry

	globalFilter  string
	columnFilters map[string]string
	sortColumn    string
	sortDir       SortDirection
	hidden        map[string]bool
	pageSize      int
	page          int

	columns []string
	rows    []int
}

const minPageSize = 1

// New returns an empty State with the given page size.
func New(pageSize int) *State {
	s := &State{
		columnFilters: make(map[string]string),
		hidden:        make(map[string]bool),
		pageSize:      pageSize,
	}
	if s.pageSize < minPageSize {
		s.pageSize = minPageSize
	}
	s.refresh()
	return s
}

// SetEntries replaces the underlying entry list (a fresh fetch) and
// returns the view to the first page. Columns are re-derived from the
// new entries; filters, sort, and visibility settings stay as they are.
func (s *State) SetEntries(entries []logsource.Entry) {
	s.entries = entries
	s.columns = deriveColumns(entries)
	s.refresh()
	s.page = 0
}

// Entries returns the underlying entry list as received.
func (s *State) Entries() []logsource.Entry {
	return s.entries
}

// SetGlobalFilter filters on the row's serialized form: any row that
// does not contain the text case-insensitively across its fields is
// excluded. Called on every keystroke; recompute is eager.
func (s *State) SetGlobalFilter(text string) {
	s.globalFilter = text
	s.refresh()
	s.resetPageIfOutOfRange()
}

// GlobalFilter returns the current global filter text.
func (s *State) GlobalFilter() string {
	return s.globalFilter
}

// SetColumnFilter filters one field with the same case-insensitive
// substring semantics as the global filter. Multiple column filters
// compose with AND. Empty text clears the column's filter.
func (s *State) SetColumnFilter(column, text string) {
	if text == "" {
		delete(s.columnFilters, column)
	} else {
		s.columnFilters[column] = text
	}
	s.refresh()
	s.resetPageIfOutOfRange()
}

// ColumnFilter returns the filter text for one column.
func (s *State) ColumnFilter(column string) string {
	return s.columnFilters[column]
}

// FilteredColumns returns the columns that currently carry a filter.
func (s *State) FilteredColumns() []string {
	out := make([]string, 0, len(s.columnFilters))
	for _, col := range s.columns {
		if s.columnFilters[col] != "" {
			out = append(out, col)
		}
	}
	return out
}

// ClearFilters removes the global filter and every column filter.
func (s *State) ClearFilters() {
	s.globalFilter = ""
	s.columnFilters = make(map[string]string)
	s.refresh()
	s.resetPageIfOutOfRange()
}

// CycleSort advances the sort state for a column: a column that is not
// the active sort key becomes the ascending key, replacing the old
// one; the active key cycles ascending → descending → none.
func (s *State) CycleSort(column string) {
	if s.sortColumn != column || s.sortDir == SortNone {
		s.sortColumn = column
		s.sortDir = SortAsc
	} else if s.sortDir == SortAsc {
		s.sortDir = SortDesc
	} else {
		s.sortColumn = ""
		s.sortDir = SortNone
	}
	s.refresh()
	s.resetPageIfOutOfRange()
}

// SetSort sets the sort key and direction directly.
func (s *State) SetSort(column string, dir SortDirection) {
	if dir == SortNone {
		s.sortColumn = ""
	} else {
		s.sortColumn = column
	}
	s.sortDir = dir
	s.refresh()
	s.resetPageIfOutOfRange()
}

// Sort returns the active sort column and direction.
func (s *State) Sort() (string, SortDirection) {
	return s.sortColumn, s.sortDir
}

// SetColumnVisible shows or hides a column. Visibility is purely
// presentational: hidden columns keep participating in the global
// filter, and a column filter already set keeps applying.
func (s *State) SetColumnVisible(column string, visible bool) {
	if visible {
		delete(s.hidden, column)
	} else {
		s.hidden[column] = true
	}
}

// ColumnVisible reports whether a column is shown.
func (s *State) ColumnVisible(column string) bool {
	return !s.hidden[column]
}

// Columns returns every derived column in display order.
func (s *State) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// VisibleColumns returns the shown columns in display order.
func (s *State) VisibleColumns() []string {
	out := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		if !s.hidden[col] {
			out = append(out, col)
		}
	}
	return out
}

// SetPageSize changes the rows-per-page and clamps the current page
// into the new range.
func (s *State) SetPageSize(n int) {
	if n < minPageSize {
		n = minPageSize
	}
	s.pageSize = n
	s.clampPage()
}

// PageSize returns the rows-per-page.
func (s *State) PageSize() int {
	return s.pageSize
}

// Page returns the current zero-based page index.
func (s *State) Page() int {
	return s.page
}

// PageCount returns ceil(filtered/pageSize), never less than 1 so an
// empty result still has a page to stand on.
func (s *State) PageCount() int {
	count := (len(s.rows) + s.pageSize - 1) / s.pageSize
	if count < 1 {
		return 1
	}
	return count
}

// SetPage moves to the given page index, clamped into range.
func (s *State) SetPage(i int) {
	s.page = i
	s.clampPage()
}

// FirstPage moves to page 0.
func (s *State) FirstPage() { s.SetPage(0) }

// PrevPage moves one page back.
func (s *State) PrevPage() { s.SetPage(s.page - 1) }

// NextPage moves one page forward.
func (s *State) NextPage() { s.SetPage(s.page + 1) }

// LastPage moves to the final page.
func (s *State) LastPage() { s.SetPage(s.PageCount() - 1) }

// Rows returns the entries of the current page in display order.
func (s *State) Rows() []logsource.Entry {
	start := s.page * s.pageSize
	if start >= len(s.rows) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.rows) {
		end = len(s.rows)
	}
	out := make([]logsource.Entry, 0, end-start)
	for _, idx := range s.rows[start:end] {
		out = append(out, s.entries[idx])
	}
	return out
}

// FilteredCount returns how many entries survive the active filters.
func (s *State) FilteredCount() int {
	return len(s.rows)
}

// TotalCount returns the size of the underlying entry list.
func (s *State) TotalCount() int {
	return len(s.entries)
}

// RowJSON serializes the full record, extras included, as indented
// JSON for clipboard copy and the explanation prompt.
func RowJSON(entry logsource.Entry) (string, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// refresh recomputes the filtered, sorted row index list from scratch.
func (s *State) refresh() {
	rows := make([]int, 0, len(s.entries))
	global := strings.ToLower(strings.TrimSpace(s.globalFilter))
	for i, entry := range s.entries {
		if global != "" && !strings.Contains(strings.ToLower(searchText(entry)), global) {
			continue
		}
		if !matchesColumnFilters(entry, s.columnFilters) {
			continue
		}
		rows = append(rows, i)
	}

	if s.sortDir != SortNone && s.sortColumn != "" {
		sortRows(rows, s.entries, s.sortColumn)
		if s.sortDir == SortDesc {
			reverse(rows)
		}
	}
	s.rows = rows
}

// resetPageIfOutOfRange implements the filter/sort page rule: the page
// resets to 0 only when it would otherwise fall past the end.
func (s *State) resetPageIfOutOfRange() {
	if s.page > s.PageCount()-1 {
		s.page = 0
	}
}

func (s *State) clampPage() {
	if s.page < 0 {
		s.page = 0
	}
	if max := s.PageCount() - 1; s.page > max {
		s.page = max
	}
}

func matchesColumnFilters(entry logsource.Entry, filters map[string]string) bool {
	for column, text := range filters {
		value, _ := entry.Field(column)
		if !strings.Contains(strings.ToLower(value), strings.ToLower(text)) {
			return false
		}
	}
	return true
}

// searchText is the row's serialized form for global filtering: every
// field the entry carries, rendered and joined.
func searchText(entry logsource.Entry) string {
	var sb strings.Builder
	for _, name := range entry.FieldNames() {
		value, _ := entry.Field(name)
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func reverse(rows []int) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
