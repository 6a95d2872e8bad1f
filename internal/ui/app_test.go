package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvale/gander/internal/config"
	"github.com/calvale/gander/internal/explain"
	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/prefs"
)

type stubSource struct {
	entries []logsource.Entry
	err     error
}

func (s stubSource) Fetch(ctx context.Context, service string, day time.Time) ([]logsource.Entry, error) {
	return s.entries, s.err
}

type stubExplainer struct {
	text string
	err  error
}

func (s stubExplainer) Explain(ctx context.Context, entry logsource.Entry) (string, error) {
	return s.text, s.err
}

func testModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Store:  prefs.NewMemoryStore(),
		Schema: prefs.DefaultSchema(),
		Source: func(endpoint string) (logsource.Source, error) {
			return stubSource{}, nil
		},
		Explainer: func() explain.Explainer {
			return stubExplainer{text: "all good"}
		},
		Config: config.Default(),
	})
}

func sampleEntries(n int) []logsource.Entry {
	entries := make([]logsource.Entry, n)
	for i := range entries {
		entries[i] = logsource.Entry{
			ID:        fmt.Sprintf("entry-%d", i),
			Timestamp: time.Date(2026, time.August, 21, 10, 0, i, 0, time.UTC),
			Level:     "INFO",
			Message:   fmt.Sprintf("message %d", i),
			Service:   "gateway",
		}
	}
	return entries
}

func pressKey(t *testing.T, m Model, s string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestStaleFetchIgnored(t *testing.T) {
	m := testModel(t)
	_ = m.startFetch() // fetch 1, superseded below
	_ = m.startFetch() // fetch 2

	m = update(t, m, logsFetchedMsg{seq: 1, entries: sampleEntries(3)})
	if m.logs.view.TotalCount() != 0 {
		t.Fatalf("stale fetch applied %d entries, want 0", m.logs.view.TotalCount())
	}
	if !m.logs.fetching {
		t.Fatal("stale fetch ended the in-flight state")
	}

	m = update(t, m, logsFetchedMsg{seq: 2, entries: sampleEntries(3)})
	if m.logs.view.TotalCount() != 3 {
		t.Fatalf("current fetch applied %d entries, want 3", m.logs.view.TotalCount())
	}
	if m.logs.fetching {
		t.Fatal("fetching still true after the current fetch landed")
	}
}

func TestFetchFailureClearsRows(t *testing.T) {
	m := testModel(t)
	_ = m.startFetch()
	m = update(t, m, logsFetchedMsg{seq: 1, entries: sampleEntries(2)})

	_ = m.startFetch()
	m = update(t, m, logsFailedMsg{seq: 2, err: errors.New("connect: refused")})
	if m.logs.fetchErr == nil {
		t.Fatal("fetchErr not set after a failed fetch")
	}
	if m.logs.view.TotalCount() != 0 {
		t.Fatalf("%d stale rows kept after a failed fetch, want 0", m.logs.view.TotalCount())
	}
}

func TestStartFetchBadEndpoint(t *testing.T) {
	m := New(Options{
		Store:  prefs.NewMemoryStore(),
		Schema: prefs.DefaultSchema(),
		Source: func(endpoint string) (logsource.Source, error) {
			return nil, errors.New("unsupported endpoint")
		},
		Config: config.Default(),
	})
	cmd := m.startFetch()
	if cmd == nil {
		t.Fatal("startFetch returned no command")
	}
	msg, ok := cmd().(logsFailedMsg)
	if !ok {
		t.Fatalf("startFetch with a bad endpoint produced %T, want logsFailedMsg", cmd())
	}
	if msg.seq != 1 {
		t.Fatalf("failure seq = %d, want 1", msg.seq)
	}
	if !strings.Contains(msg.err.Error(), "unsupported endpoint") {
		t.Fatalf("failure error = %v, want the source error wrapped", msg.err)
	}
}

func TestNoticeExpirySequence(t *testing.T) {
	m := testModel(t)
	_ = m.setNotice(noticeInfo, "first")
	_ = m.setNotice(noticeWarn, "second")

	m = update(t, m, noticeExpiredMsg{seq: 1})
	if m.notice.text != "second" {
		t.Fatalf("expiry of a replaced notice cleared %q", m.notice.text)
	}
	m = update(t, m, noticeExpiredMsg{seq: 2})
	if m.notice.text != "" {
		t.Fatalf("notice %q still set after its expiry", m.notice.text)
	}
}

func TestExplainNoCredential(t *testing.T) {
	m := testModel(t)
	_ = m.startExplain(logsource.Entry{ID: "e1", Message: "boom"})
	if m.modal == nil {
		t.Fatal("startExplain did not open the modal")
	}

	m = update(t, m, explainFailedMsg{seq: 1, err: explain.ErrNoCredential})
	if m.modal != nil {
		t.Fatal("modal still open after the explanation failed")
	}
	if !strings.Contains(m.notice.text, "credential") {
		t.Fatalf("notice = %q, want a credential hint", m.notice.text)
	}
}

func TestLateExplanationDropped(t *testing.T) {
	m := testModel(t)
	_ = m.startExplain(logsource.Entry{ID: "e1", Message: "boom"})

	// Closing the pending modal abandons the request.
	m = pressKey(t, m, "esc")
	if m.modal != nil {
		t.Fatal("escape did not close the explanation modal")
	}
	m = update(t, m, explainedMsg{seq: 1, text: "late answer"})
	if m.modal != nil {
		t.Fatal("a late explanation reopened the modal")
	}
}

func TestFilterPerKeystroke(t *testing.T) {
	m := testModel(t)
	_ = m.startFetch()
	m = update(t, m, logsFetchedMsg{seq: 1, entries: []logsource.Entry{
		{ID: "a", Level: "ERROR", Message: "connection refused"},
		{ID: "b", Level: "INFO", Message: "listening"},
	}})

	m = pressKey(t, m, "/")
	if !m.logs.filterActive {
		t.Fatal("/ did not open the filter input")
	}
	for _, r := range "refused" {
		m = pressKey(t, m, string(r))
	}
	if got := m.logs.view.GlobalFilter(); got != "refused" {
		t.Fatalf("GlobalFilter = %q, want refused", got)
	}
	if got := m.logs.view.FilteredCount(); got != 1 {
		t.Fatalf("FilteredCount = %d, want 1", got)
	}

	// Escape restores the filter that was set before the input opened.
	m = pressKey(t, m, "esc")
	if m.logs.filterActive {
		t.Fatal("escape did not close the filter input")
	}
	if got := m.logs.view.GlobalFilter(); got != "" {
		t.Fatalf("GlobalFilter after escape = %q, want empty", got)
	}

	// Enter keeps what was typed.
	m = pressKey(t, m, "/")
	for _, r := range "listen" {
		m = pressKey(t, m, string(r))
	}
	m = pressKey(t, m, "enter")
	if m.logs.filterActive {
		t.Fatal("enter did not close the filter input")
	}
	if got := m.logs.view.GlobalFilter(); got != "listen" {
		t.Fatalf("GlobalFilter after enter = %q, want listen", got)
	}
}

func TestLineNumberTogglePersists(t *testing.T) {
	m := testModel(t)
	if !m.showLineNumbers {
		t.Fatal("line numbers should default to on")
	}
	m = pressKey(t, m, "#")
	if m.showLineNumbers {
		t.Fatal("# did not toggle line numbers off")
	}
	if m.schema.ShowLineNumbers.Get(m.store) {
		t.Fatal("toggle was not persisted to the store")
	}
}

func TestAutoRefreshSequence(t *testing.T) {
	m := testModel(t)
	m = pressKey(t, m, "R")
	if !m.logs.autoRefresh {
		t.Fatal("R did not enable auto refresh")
	}
	armed := m.refreshSeq

	m = pressKey(t, m, "R")
	if m.logs.autoRefresh {
		t.Fatal("R did not disable auto refresh")
	}

	// A tick armed before the toggle must not fetch.
	before := m.logs.fetchSeq
	m = update(t, m, refreshTickMsg{seq: armed})
	if m.logs.fetchSeq != before {
		t.Fatal("stale refresh tick started a fetch")
	}

	m = pressKey(t, m, "R")
	m = update(t, m, refreshTickMsg{seq: m.refreshSeq})
	if m.logs.fetchSeq != before+1 {
		t.Fatalf("live refresh tick fetchSeq = %d, want %d", m.logs.fetchSeq, before+1)
	}
	if !m.logs.fetching {
		t.Fatal("live refresh tick did not start a fetch")
	}
}

func TestRemoveLastServiceBlocked(t *testing.T) {
	m := testModel(t)
	m.services = m.services[:1]
	next, _ := m.removeService(0)
	m = next.(Model)
	if len(m.services) != 1 {
		t.Fatalf("removed down to %d services, want the last one kept", len(m.services))
	}
	if !strings.Contains(m.notice.text, "at least one") {
		t.Fatalf("notice = %q, want the keep-one warning", m.notice.text)
	}
}

func TestRemoveSelectedServiceSwitches(t *testing.T) {
	m := testModel(t)
	if len(m.services) < 2 {
		t.Fatalf("default services = %d, want at least 2", len(m.services))
	}
	removed := m.service.Name

	next, _ := m.removeService(0)
	m = next.(Model)
	if m.service.Name == removed {
		t.Fatalf("selection still on removed service %q", removed)
	}
	if m.service.Name != m.services[0].Name {
		t.Fatalf("selection = %q, want first remaining %q", m.service.Name, m.services[0].Name)
	}
	if got := prefs.LoadServices(m.store); len(got) != len(m.services) {
		t.Fatalf("store has %d services, want %d", len(got), len(m.services))
	}
}

func TestSaveServiceUpdatesSelection(t *testing.T) {
	m := testModel(t)
	name := m.service.Name

	cmd := m.saveService(0, prefs.Service{Name: name, Endpoint: "https://logs.example.com"})
	if cmd == nil {
		t.Fatal("saving the selected service should refetch")
	}
	if m.service.Endpoint != "https://logs.example.com" {
		t.Fatalf("selection endpoint = %q, not updated", m.service.Endpoint)
	}
	loaded := prefs.LoadServices(m.store)
	if loaded[0].Endpoint != "https://logs.example.com" {
		t.Fatalf("stored endpoint = %q, not updated", loaded[0].Endpoint)
	}

	_ = m.saveService(-1, prefs.Service{Name: "checkout", Endpoint: ""})
	if len(m.services) != len(loaded)+1 {
		t.Fatalf("add left %d services, want %d", len(m.services), len(loaded)+1)
	}
}

func TestViewRendersAfterResize(t *testing.T) {
	m := testModel(t)
	if got := m.View(); got != "loading..." {
		t.Fatalf("View before the first resize = %q", got)
	}

	_ = m.startFetch()
	m = update(t, m, logsFetchedMsg{seq: 1, entries: sampleEntries(2)})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	if !strings.Contains(out, "gander") {
		t.Fatal("logs view missing the logo")
	}
	if !strings.Contains(out, m.service.Name) {
		t.Fatalf("logs view missing the service name %q", m.service.Name)
	}

	m = pressKey(t, m, "tab")
	if m.currentView != ViewSettings {
		t.Fatal("tab did not switch to settings")
	}
	out = m.View()
	if !strings.Contains(out, "Timezone") {
		t.Fatal("settings view missing the Timezone row")
	}

	m = pressKey(t, m, "tab")
	if m.currentView != ViewLogs {
		t.Fatal("tab did not switch back to logs")
	}
}

func TestThemeCycleKey(t *testing.T) {
	m := testModel(t)
	start := m.theme.Name
	m = pressKey(t, m, "t")
	if m.theme.Name == start {
		t.Fatal("t did not cycle the theme")
	}
	if !strings.Contains(m.notice.text, m.theme.Name) {
		t.Fatalf("notice = %q, want the new theme name", m.notice.text)
	}
}
