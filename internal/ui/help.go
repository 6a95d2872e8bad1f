package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helpItem is one key and its description.
type helpItem struct {
	keys string
	desc string
}

// helpSection groups related bindings under a heading.
type helpSection struct {
	title string
	items []helpItem
}

func helpSections() []helpSection {
	return []helpSection{
		{
			title: "Navigate",
			items: []helpItem{
				{"j/k", "move row"},
				{"h/l", "move column"},
				{"g/G", "first/last row"},
				{"[/]", "previous/next page"},
				{"{/}", "first/last page"},
				{"tab", "logs / settings"},
			},
		},
		{
			title: "Table",
			items: []helpItem{
				{"/", "filter all columns"},
				{"f", "filter current column"},
				{"s", "sort current column"},
				{"v", "show or hide columns"},
				{"#", "line numbers"},
				{"esc", "clear filters"},
			},
		},
		{
			title: "Logs",
			items: []helpItem{
				{"d", "pick date"},
				{"S", "pick service"},
				{"r", "refresh"},
				{"R", "auto refresh"},
				{"enter", "entry detail"},
				{"x", "explain entry"},
				{"c", "copy row JSON"},
				{"y", "copy view link"},
			},
		},
		{
			title: "Settings",
			items: []helpItem{
				{"enter", "edit value"},
				{"h/l", "cycle value"},
				{"a", "add service"},
				{"D", "remove service"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"t", "cycle theme"},
				{"?", "help"},
				{"q", "quit"},
			},
		},
	}
}

// helpModal lists every binding.
type helpModal struct{}

func newHelpModal() *helpModal { return &helpModal{} }

func (h *helpModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape),
		key.Matches(msg, m.keys.Confirm),
		key.Matches(msg, m.keys.Help),
		key.Matches(msg, m.keys.Quit):
		return nil, true
	}
	return nil, false
}

func (h *helpModal) view(m *Model) string {
	styles := m.theme.Styles()
	keyStyle := styles.WarningText.Width(10)
	var b strings.Builder
	for i, section := range helpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.keys))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
	}
	return renderModalBox(m, "Help", strings.TrimRight(b.String(), "\n"), 44)
}
