// Package config handles loading and parsing gander's configuration file.
//
// # Overview
//
// This package reads gander's TOML configuration: where the data
// directory lives, how log fetching behaves, AI request limits, and UI
// tuning. Display preferences are NOT here; anything the user changes
// from inside the dashboard persists through the prefs package instead.
// The config file is for operator-level knobs that rarely change.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gander/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/gander/config.toml
//   - Data directory: ~/.local/share/gander
//   - Preference store: <data_dir>/prefs
//   - Log file: <data_dir>/gander.log
//   - Source timeout: 10s, sample latency: 650ms, file tail: 5000 lines
//   - AI timeout: 60s
//   - Theme: dracula, refresh interval: 30s, log level: info
//
// # TOML Format
//
// Example config.toml:
//
//	[storage]
//	dir = "~/.local/share/gander"
//
//	[source]
//	timeout = "10s"
//	sample_latency = "650ms"
//	file_tail_lines = 5000
//
//	[ai]
//	timeout = "60s"
//
//	[ui]
//	theme = "dracula"
//	refresh_every = "30s"
//
//	[logging]
//	level = "info"
//
// Every section and field is optional. Durations use Go duration
// syntax ("10s", "650ms"). Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Durations that do not parse or are not positive
//
// Missing config files are NOT an error - defaults are used instead.
// This allows gander to work out-of-the-box without configuration.
//
// # Design Philosophy
//
// The package follows the principle of sensible defaults: a fresh
// install with no config file gets a working dashboard showing sample
// data. Load runs once at startup and returns an immutable Config
// struct. No global state or singleton patterns are used.
//
// # Testing Considerations
//
// When testing code that uses this package:
//   - Provide explicit config paths to avoid dependency on user's home directory
//   - Use the Config struct directly rather than Load() for unit tests
//   - Set HOME via t.Setenv when exercising tilde expansion
package config
