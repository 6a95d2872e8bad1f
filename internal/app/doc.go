// Package app provides the orchestration layer for the gander dashboard.
//
// # Overview
//
// This package wires together configuration, logging, the preference
// store, the log source factory, and the AI explainer to launch the
// TUI. It serves as the composition root where all dependencies are
// initialized and connected; the domain packages never import each
// other's constructors directly.
//
// # Initialization Sequence
//
//  1. Load configuration from ~/.config/gander/config.toml (missing file uses defaults)
//  2. Resolve the initial view from the -link flag or the -date/-service flags
//  3. Create the data directory and the file-backed diagnostic logger
//  4. Open the Badger preference store, falling back to memory when it cannot open
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable startup
// problems:
//
// Fatal errors (returned from Run):
//   - Configuration file present but unparseable
//   - A -link value that is not a usable view link
//   - Data directory that cannot be created
//
// Recoverable problems (logged, startup continues):
//   - Preference database locked or corrupt: an in-memory store takes
//     over, so preferences last the session but not across restarts
//
// # Logging
//
// Diagnostics go to a rotating file under the data directory, never to
// stdout: the TUI owns the terminal for its entire lifetime. The log
// level comes from the config file.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	err := app.Run(ctx, app.Options{
//		Date:    "today",
//		Service: "gateway",
//	})
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
package app
