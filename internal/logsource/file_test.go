package logsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileSource_FiltersToRequestedDay(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.jsonl")
	lines := []string{
		`{"id":"1","timestamp":"2026-06-09T23:59:59Z","level":"info","message":"yesterday"}`,
		`{"id":"2","timestamp":"2026-06-10T00:00:00Z","level":"info","message":"first of day"}`,
		`not json at all`,
		`{"id":"3","timestamp":"2026-06-10T18:30:00Z","level":"error","message":"mid day"}`,
		``,
		`{"id":"4","timestamp":"2026-06-11T00:00:00Z","level":"info","message":"tomorrow"}`,
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := NewFileSource("file://"+path, 100)
	if err != nil {
		t.Fatalf("NewFileSource returned error: %v", err)
	}

	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	entries, err := src.Fetch(context.Background(), "app", day)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 inside the day", len(entries))
	}
	if entries[0].ID != "2" || entries[1].ID != "3" {
		t.Fatalf("entry ids = %q, %q, want 2, 3", entries[0].ID, entries[1].ID)
	}
	if entries[0].Service != "app" {
		t.Fatalf("Service = %q, want fallback to requested service", entries[0].Service)
	}
}

func TestFileSource_TailKeepsNewestLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "big.jsonl")

	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, `{"id":"%d","timestamp":"2026-06-10T12:00:%02dZ","level":"info","message":"m"}`+"\n", i, i)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := NewFileSource("file://"+path, 10)
	if err != nil {
		t.Fatalf("NewFileSource returned error: %v", err)
	}

	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	entries, err := src.Fetch(context.Background(), "app", day)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("entries = %d, want tail of 10", len(entries))
	}
	if entries[0].ID != "40" || entries[9].ID != "49" {
		t.Fatalf("tail ids = %q..%q, want 40..49", entries[0].ID, entries[9].ID)
	}
}

func TestFileSource_MissingFileYieldsNoEntries(t *testing.T) {
	t.Parallel()

	src, err := NewFileSource("file:///nowhere/really/missing.jsonl", 10)
	if err != nil {
		t.Fatalf("NewFileSource returned error: %v", err)
	}
	entries, err := src.Fetch(context.Background(), "app", time.Now())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestNewFileSource_RejectsRemoteHosts(t *testing.T) {
	if _, err := NewFileSource("file://fileserver/logs/app.jsonl", 10); err == nil {
		t.Fatalf("NewFileSource returned nil error, want error for remote host")
	}
}
