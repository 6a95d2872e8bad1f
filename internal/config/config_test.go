package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.SourceTimeout != defaultSourceTimeout {
		t.Fatalf("SourceTimeout = %v, want %v", cfg.SourceTimeout, defaultSourceTimeout)
	}
	if cfg.SampleLatency != defaultSampleLatency {
		t.Fatalf("SampleLatency = %v, want %v", cfg.SampleLatency, defaultSampleLatency)
	}
	if cfg.FileTailLines != defaultFileTailLines {
		t.Fatalf("FileTailLines = %d, want %d", cfg.FileTailLines, defaultFileTailLines)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_ParsesAllSections(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[storage]
dir = "  ~/gander-data  "

[source]
timeout = "5s"
sample_latency = "100ms"
file_tail_lines = 200

[ai]
timeout = "90s"

[ui]
theme = "slate"
refresh_every = "15s"

[logging]
level = "debug"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.SourceTimeout != 5*time.Second {
		t.Fatalf("SourceTimeout = %v, want 5s", cfg.SourceTimeout)
	}
	if cfg.SampleLatency != 100*time.Millisecond {
		t.Fatalf("SampleLatency = %v, want 100ms", cfg.SampleLatency)
	}
	if cfg.FileTailLines != 200 {
		t.Fatalf("FileTailLines = %d, want 200", cfg.FileTailLines)
	}
	if cfg.AITimeout != 90*time.Second {
		t.Fatalf("AITimeout = %v, want 90s", cfg.AITimeout)
	}
	if cfg.Theme != "slate" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "slate")
	}
	if cfg.RefreshEvery != 15*time.Second {
		t.Fatalf("RefreshEvery = %v, want 15s", cfg.RefreshEvery)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[source]
timeout = "   "

[ui]
theme = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceTimeout != defaultSourceTimeout {
		t.Fatalf("SourceTimeout = %v, want %v", cfg.SourceTimeout, defaultSourceTimeout)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
}

func TestLoad_BadDurationFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[ai]
timeout = "ninety seconds"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want duration parse error")
	}
	if !strings.Contains(err.Error(), "ai.timeout") {
		t.Fatalf("Load error = %q, want it to mention ai.timeout", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[storage`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenDataDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/gander.log")) {
		t.Fatalf("LogPath = %q, want it to end with /gander.log", got)
	}
}

func TestPrefsDir_UnderDataDir(t *testing.T) {
	cfg := Config{DataDir: "/data/gander"}
	want := filepath.Join("/data/gander", "prefs")
	if got := cfg.PrefsDir(); got != want {
		t.Fatalf("PrefsDir = %q, want %q", got, want)
	}
}
