package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything gander reads from its config file. Paths
// are expanded and absolute by the time Load returns.
type Config struct {
	DataDir       string
	SourceTimeout time.Duration
	SampleLatency time.Duration
	FileTailLines int
	AITimeout     time.Duration
	Theme         string
	RefreshEvery  time.Duration
	LogLevel      string
}

const (
	defaultConfigPath    = "~/.config/gander/config.toml"
	defaultDataDir       = "~/.local/share/gander"
	defaultSourceTimeout = 10 * time.Second
	defaultSampleLatency = 650 * time.Millisecond
	defaultFileTailLines = 5000
	defaultAITimeout     = 60 * time.Second
	defaultTheme         = "dracula"
	defaultRefreshEvery  = 30 * time.Second
	defaultLogLevel      = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		DataDir:       mustExpand(defaultDataDir),
		SourceTimeout: defaultSourceTimeout,
		SampleLatency: defaultSampleLatency,
		FileTailLines: defaultFileTailLines,
		AITimeout:     defaultAITimeout,
		Theme:         defaultTheme,
		RefreshEvery:  defaultRefreshEvery,
		LogLevel:      defaultLogLevel,
	}
}

// Load locates and parses the gander config, falling back to defaults
// when the file is missing. A file that exists but does not parse is
// an error; silently ignoring a broken config hides real mistakes.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Storage struct {
			Dir string `toml:"dir"`
		} `toml:"storage"`
		Source struct {
			Timeout       string `toml:"timeout"`
			SampleLatency string `toml:"sample_latency"`
			FileTailLines int    `toml:"file_tail_lines"`
		} `toml:"source"`
		AI struct {
			Timeout string `toml:"timeout"`
		} `toml:"ai"`
		UI struct {
			Theme        string `toml:"theme"`
			RefreshEvery string `toml:"refresh_every"`
		} `toml:"ui"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.Storage.Dir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}

	if cfg.SourceTimeout, err = parseDuration("source.timeout", raw.Source.Timeout, defaultSourceTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SampleLatency, err = parseDuration("source.sample_latency", raw.Source.SampleLatency, defaultSampleLatency); err != nil {
		return Config{}, err
	}
	if raw.Source.FileTailLines > 0 {
		cfg.FileTailLines = raw.Source.FileTailLines
	}
	if cfg.AITimeout, err = parseDuration("ai.timeout", raw.AI.Timeout, defaultAITimeout); err != nil {
		return Config{}, err
	}
	if cfg.RefreshEvery, err = parseDuration("ui.refresh_every", raw.UI.RefreshEvery, defaultRefreshEvery); err != nil {
		return Config{}, err
	}

	if theme := strings.TrimSpace(raw.UI.Theme); theme != "" {
		cfg.Theme = theme
	}
	if level := strings.TrimSpace(raw.Logging.Level); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// PrefsDir returns the preference database directory.
func (c Config) PrefsDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/prefs")
	}
	return filepath.Join(c.DataDir, "prefs")
}

// LogPath returns the path of gander's own log file. The TUI owns the
// terminal, so diagnostics go to a file, never to stdout.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/gander.log")
	}
	return filepath.Join(c.DataDir, "gander.log")
}

func parseDuration(name, raw string, def time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s: %q is not a positive duration", name, trimmed)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
