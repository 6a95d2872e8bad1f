package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the dashboard responds to, grouped the way
// the help modal presents them.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	SwitchView key.Binding
	CycleTheme key.Binding
	Confirm    key.Binding
	Escape     key.Binding

	// Movement
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Top       key.Binding
	Bottom    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Table
	Filter       key.Binding
	ColumnFilter key.Binding
	Sort         key.Binding
	Columns      key.Binding
	LineNumbers  key.Binding

	// Logs
	PickDate    key.Binding
	PickService key.Binding
	Refresh     key.Binding
	AutoRefresh key.Binding
	Detail      key.Binding
	Explain     key.Binding
	CopyRow     key.Binding
	CopyLink    key.Binding

	// Settings
	AddService    key.Binding
	RemoveService key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "logs / settings"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "move row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "move row"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/l", "move column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("h/l", "move column"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last row"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "last page"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter all columns"),
		),
		ColumnFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		Columns: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show or hide columns"),
		),
		LineNumbers: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "line numbers"),
		),

		PickDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "pick date"),
		),
		PickService: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "pick service"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		AutoRefresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "auto refresh"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "entry detail"),
		),
		Explain: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "explain entry"),
		),
		CopyRow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy row JSON"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy view link"),
		),

		AddService: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add service"),
		),
		RemoveService: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "remove service"),
		),
	}
}
