// Package ui provides the terminal user interface for gander.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program following the Model-Update-View
// pattern: a single Model value holds all state, Update folds incoming
// messages into the next Model, and View renders the whole screen from
// scratch each frame. All I/O (log fetching, AI explanations, the
// refresh ticker) runs inside tea.Cmd closures so Update itself never
// blocks.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model definition, Options, message types, Update routing, and the Run function
//   - logs.go: Logs view state, key handling, and the filter input flow
//   - table.go: Log table rendering with column windowing and level coloring
//   - settings.go: Settings view rows, preference editors, and service management
//   - header.go: Header bar, status bar, and the bottom hint/notice line
//   - modal.go: Modal interface plus the shared prompt, picker, and column modals
//   - detail.go: Entry detail and AI explanation modals
//   - help.go: Key binding reference modal
//   - theme.go: Color themes and derived lipgloss styles
//   - layout.go, style_helpers.go, strings.go: Box drawing and text utilities
//
// # Views
//
// Two top-level views switch with Tab:
//
//   - Logs View: One service and one day at a time, rendered as a
//     filterable, sortable, paginated table. Enter opens the entry
//     detail, x asks the configured AI model to explain the entry.
//   - Settings View: Display preferences (page size, line numbers,
//     date/time formats, timezone, AI model and credential) and the
//     service list. Preference edits persist immediately.
//
// # Modals
//
// Modals capture all key input while open and draw centered over the
// current view. The modal interface has two methods: update consumes a
// key and reports whether the modal is done, view renders it. Prompt
// and picker modals are shared by several editors; the detail and
// explanation modals own a viewport for scrolling.
//
// # Event Flow
//
//  1. Run() builds the Model from Options and starts the Bubble Tea program
//  2. Init() enters the alternate screen and requests the first fetch
//  3. Fetches and explanations run as tea.Cmd closures and come back as messages
//  4. Every asynchronous message carries a sequence number; Update drops
//     messages whose sequence no longer matches, so a response from an
//     abandoned request can never overwrite newer state
//  5. Context cancellation or q shuts the program down
//
// # Key Bindings
//
//   - j/k: Move between rows, crossing page boundaries
//   - h/l: Move the column cursor, scrolling hidden columns into view
//   - [ and ]: Previous/next page, { and }: first/last page
//   - /: Filter all columns as you type, f: filter the cursor column
//   - s: Cycle sort on the cursor column, v: choose visible columns
//   - d: Pick a date, S: pick a service, r: refetch, R: toggle auto refresh
//   - Enter: Entry detail, x: AI explanation, c: copy row JSON, y: copy view link
//   - #: Toggle line numbers, t: cycle theme, Tab: switch view
//   - ?: Help, q or Ctrl+C: Quit
//
// # Usage Example
//
//	opts := ui.Options{
//		Context: ctx,
//		Store:   store,
//		Schema:  prefs.DefaultSchema(),
//		Config:  cfg,
//		Logger:  logger,
//		Initial: viewlink.For("gateway", "today"),
//	}
//	if err := ui.Run(opts); err != nil {
//		log.Fatal(err)
//	}
//
// # Design Principles
//
//   - Single source of truth: all state lives on the Model; renders are pure
//   - Stale responses are dropped, never raced: sequence numbers on every async message
//   - Preferences persist on change through prefs.Store; no save button
//   - The terminal belongs to the UI: file logging only while running
package ui
