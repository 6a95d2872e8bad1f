package logview

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/calvale/gander/internal/logsource"
)

func entry(id, level, message string) logsource.Entry {
	return logsource.Entry{ID: id, Level: level, Message: message}
}

// testEntries builds a small day of logs with ties and extras so sort
// and filter behavior is observable.
func testEntries() []logsource.Entry {
	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	return []logsource.Entry{
		{ID: "1", Timestamp: base.Add(1 * time.Minute), Level: "INFO", Service: "gateway", Message: "request accepted", StatusCode: "200"},
		{ID: "2", Timestamp: base.Add(2 * time.Minute), Level: "ERROR", Service: "billing", Message: "charge declined", StatusCode: "402"},
		{ID: "3", Timestamp: base.Add(3 * time.Minute), Level: "INFO", Service: "gateway", Message: "request accepted", StatusCode: "200"},
		{ID: "4", Timestamp: base.Add(4 * time.Minute), Level: "WARN", Service: "orders", Message: "slow handler", Extra: map[string]any{"durationMs": "1800"}},
		{ID: "5", Timestamp: base.Add(5 * time.Minute), Level: "ERROR", Service: "gateway", Message: "upstream timeout", StatusCode: "504"},
		{ID: "6", Timestamp: base.Add(6 * time.Minute), Level: "DEBUG", Service: "orders", Message: "cache warm"},
		{ID: "7", Timestamp: base.Add(7 * time.Minute), Level: "INFO", Service: "billing", Message: "invoice sent", StatusCode: "201"},
	}
}

func rowIDs(s *State) []string {
	saved := s.Page()
	ids := make([]string, 0, s.FilteredCount())
	for i := 0; i < s.PageCount(); i++ {
		s.SetPage(i)
		for _, e := range s.Rows() {
			ids = append(ids, e.ID)
		}
	}
	s.SetPage(saved)
	return ids
}

func TestAllPagesCoverAllRows(t *testing.T) {
	t.Parallel()

	s := New(3)
	s.SetEntries(testEntries())

	ids := rowIDs(s)
	if len(ids) != s.TotalCount() {
		t.Fatalf("rows across pages = %d, want %d", len(ids), s.TotalCount())
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("row %s appears on more than one page", id)
		}
		seen[id] = true
	}
}

func TestColumnFilterMatchesAndRestores(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())
	before := rowIDs(s)

	s.SetColumnFilter("service", "GATE")
	for _, e := range s.Rows() {
		if !strings.Contains(strings.ToLower(e.Service), "gate") {
			t.Fatalf("row %s service = %q, want match for filter", e.ID, e.Service)
		}
	}
	if got := s.FilteredCount(); got != 3 {
		t.Fatalf("FilteredCount = %d, want 3", got)
	}

	s.SetColumnFilter("service", "")
	if got := rowIDs(s); !reflect.DeepEqual(got, before) {
		t.Fatalf("rows after clearing filter = %v, want %v", got, before)
	}
}

func TestFilterCompositionIsOrderIndependent(t *testing.T) {
	t.Parallel()

	columnFirst := New(10)
	columnFirst.SetEntries(testEntries())
	columnFirst.SetColumnFilter("service", "gateway")
	columnFirst.SetGlobalFilter("request")

	globalFirst := New(10)
	globalFirst.SetEntries(testEntries())
	globalFirst.SetGlobalFilter("request")
	globalFirst.SetColumnFilter("service", "gateway")

	got := rowIDs(columnFirst)
	if other := rowIDs(globalFirst); !reflect.DeepEqual(got, other) {
		t.Fatalf("composition order changed membership: %v vs %v", got, other)
	}

	// Intersection of the independent predicates.
	onlyColumn := New(10)
	onlyColumn.SetEntries(testEntries())
	onlyColumn.SetColumnFilter("service", "gateway")

	onlyGlobal := New(10)
	onlyGlobal.SetEntries(testEntries())
	onlyGlobal.SetGlobalFilter("request")

	inColumn := make(map[string]bool)
	for _, id := range rowIDs(onlyColumn) {
		inColumn[id] = true
	}
	want := make([]string, 0)
	for _, id := range rowIDs(onlyGlobal) {
		if inColumn[id] {
			want = append(want, id)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("composed rows = %v, want intersection %v", got, want)
	}
}

func TestSortReverseIsExactReverse(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())

	s.CycleSort("level")
	asc := rowIDs(s)

	s.CycleSort("level")
	desc := rowIDs(s)

	if len(asc) != len(desc) {
		t.Fatalf("row count changed across direction flip: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending order = %v, want exact reverse of %v", desc, asc)
		}
	}
}

func TestSortCycleEndsAtOriginalOrder(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())
	original := rowIDs(s)

	s.CycleSort("level")
	if col, dir := s.Sort(); col != "level" || dir != SortAsc {
		t.Fatalf("after first cycle sort = %q %v, want level ascending", col, dir)
	}
	s.CycleSort("level")
	if _, dir := s.Sort(); dir != SortDesc {
		t.Fatalf("after second cycle dir = %v, want descending", dir)
	}
	s.CycleSort("level")
	if col, dir := s.Sort(); col != "" || dir != SortNone {
		t.Fatalf("after third cycle sort = %q %v, want none", col, dir)
	}
	if got := rowIDs(s); !reflect.DeepEqual(got, original) {
		t.Fatalf("rows after full cycle = %v, want original order %v", got, original)
	}
}

func TestSortSwitchingColumnReplacesKey(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())

	s.CycleSort("level")
	s.CycleSort("service")
	if col, dir := s.Sort(); col != "service" || dir != SortAsc {
		t.Fatalf("sort = %q %v, want service ascending after switching columns", col, dir)
	}
}

func TestNumericColumnSortsNumerically(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries([]logsource.Entry{
		{ID: "a", StatusCode: "503"},
		{ID: "b", StatusCode: "99"},
		{ID: "c", StatusCode: "404"},
	})
	s.CycleSort("statusCode")
	got := rowIDs(s)
	want := []string{"b", "c", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("numeric sort order = %v, want %v", got, want)
	}
}

func TestPageSizeRecomputesCountAndClamps(t *testing.T) {
	t.Parallel()

	s := New(3)
	s.SetEntries(testEntries()) // 7 rows

	if got := s.PageCount(); got != 3 {
		t.Fatalf("PageCount = %d, want ceil(7/3) = 3", got)
	}
	s.LastPage()
	if got := s.Page(); got != 2 {
		t.Fatalf("Page = %d, want 2", got)
	}

	s.SetPageSize(5)
	if got := s.PageCount(); got != 2 {
		t.Fatalf("PageCount = %d, want ceil(7/5) = 2", got)
	}
	if got := s.Page(); got != 1 {
		t.Fatalf("Page = %d, want clamped to 1", got)
	}
}

func TestGlobalFilterScenario(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries([]logsource.Entry{
		entry("1", "INFO", "a"),
		entry("2", "ERROR", "b"),
	})
	s.SetGlobalFilter("err")

	rows := s.Rows()
	if len(rows) != 1 || rows[0].ID != "2" {
		t.Fatalf("rows = %#v, want exactly the ERROR entry", rows)
	}
}

func TestFilterResetsPageOnlyWhenOutOfRange(t *testing.T) {
	t.Parallel()

	s := New(2)
	s.SetEntries(testEntries()) // 7 rows, 4 pages
	s.SetPage(1)

	// Still 3 gateway rows = 2 pages; page 1 remains valid.
	s.SetColumnFilter("service", "gateway")
	if got := s.Page(); got != 1 {
		t.Fatalf("Page = %d, want 1 (still in range)", got)
	}

	// One match = 1 page; page 1 is out of range, reset to 0.
	s.SetGlobalFilter("timeout")
	if got := s.Page(); got != 0 {
		t.Fatalf("Page = %d, want reset to 0", got)
	}
}

func TestHiddenColumnsStayInGlobalFilterAndKeepColumnFilters(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())

	s.SetColumnVisible("service", false)
	for _, col := range s.VisibleColumns() {
		if col == "service" {
			t.Fatalf("VisibleColumns still lists hidden column")
		}
	}

	// "billing" appears only in the hidden service field.
	s.SetGlobalFilter("billing")
	if got := s.FilteredCount(); got != 2 {
		t.Fatalf("FilteredCount = %d, want 2 (global filter sees hidden columns)", got)
	}

	s.SetGlobalFilter("")
	s.SetColumnFilter("service", "orders")
	if got := s.FilteredCount(); got != 2 {
		t.Fatalf("FilteredCount = %d, want 2 (column filter applies while hidden)", got)
	}

	s.SetColumnVisible("service", true)
	if got := s.FilteredCount(); got != 2 {
		t.Fatalf("FilteredCount = %d, want unchanged after unhiding", got)
	}
}

func TestInputEntriesAreNeverMutated(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	originalIDs := make([]string, len(entries))
	for i, e := range entries {
		originalIDs[i] = e.ID
	}

	s := New(3)
	s.SetEntries(entries)
	s.CycleSort("level")
	s.CycleSort("level")
	s.SetGlobalFilter("request")
	s.SetColumnFilter("service", "gateway")

	for i, e := range entries {
		if e.ID != originalIDs[i] {
			t.Fatalf("input slice reordered: index %d = %s, want %s", i, e.ID, originalIDs[i])
		}
	}
}

func TestEmptyFilterResultKeepsOnePage(t *testing.T) {
	t.Parallel()

	s := New(5)
	s.SetEntries(testEntries())
	s.SetGlobalFilter("no such text anywhere")

	if got := s.FilteredCount(); got != 0 {
		t.Fatalf("FilteredCount = %d, want 0", got)
	}
	if got := s.PageCount(); got != 1 {
		t.Fatalf("PageCount = %d, want 1", got)
	}
	if rows := s.Rows(); len(rows) != 0 {
		t.Fatalf("Rows = %#v, want none", rows)
	}
}

func TestDeriveColumns(t *testing.T) {
	t.Parallel()

	s := New(10)
	s.SetEntries(testEntries())

	got := s.Columns()
	want := []string{"id", "timestamp", "level", "service", "message", "statusCode", "durationMs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns = %v, want %v", got, want)
	}
}

func TestRowJSONCarriesEverything(t *testing.T) {
	t.Parallel()

	e := logsource.Entry{
		ID:      "9",
		Level:   "WARN",
		Message: "spill",
		Extra:   map[string]any{"bucket": "b-12"},
	}
	text, err := RowJSON(e)
	if err != nil {
		t.Fatalf("RowJSON returned error: %v", err)
	}
	for _, want := range []string{`"id": "9"`, `"bucket": "b-12"`, `"level": "WARN"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("RowJSON output %s missing %s", text, want)
		}
	}
}
