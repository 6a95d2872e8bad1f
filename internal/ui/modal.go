package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// modal is an input-capturing overlay. update returns done when the
// modal should close.
type modal interface {
	update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool)
	view(m *Model) string
}

// renderModalBox centers a bordered box over a blank backdrop. width is
// the content width; padding and borders add around it.
func renderModalBox(m *Model, title, content string, width int) string {
	styles := m.theme.Styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(1, 2).
		Width(width + 4)

	body := styles.AccentText.Bold(true).Render(title) + "\n\n" + content
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		box.Render(body),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

// promptModal asks for one line of text. apply validates and commits;
// an error keeps the modal open with the message shown.
type promptModal struct {
	title   string
	hint    string
	input   textinput.Model
	errText string
	apply   func(m *Model, value string) (tea.Cmd, error)
}

func newPromptModal(title, hint, value, placeholder string, apply func(*Model, string) (tea.Cmd, error)) *promptModal {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 200
	input.SetValue(value)
	input.CursorEnd()
	input.Focus()
	return &promptModal{title: title, hint: hint, input: input, apply: apply}
}

func (p *promptModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return nil, true
	case key.Matches(msg, m.keys.Confirm):
		cmd, err := p.apply(m, strings.TrimSpace(p.input.Value()))
		if err != nil {
			p.errText = err.Error()
			return nil, false
		}
		return cmd, true
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.errText = ""
	return cmd, false
}

func (p *promptModal) view(m *Model) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(p.input.View())
	if p.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(p.errText))
	}
	if p.hint != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(p.hint))
	}
	return renderModalBox(m, p.title, b.String(), 52)
}

// pickItem is one selectable row in a pickModal.
type pickItem struct {
	label string
	hint  string
}

// pickModal selects one item from a list.
type pickModal struct {
	title  string
	items  []pickItem
	cursor int
	apply  func(m *Model, index int) tea.Cmd
}

func (p *pickModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		p.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		p.cursor = max(len(p.items)-1, 0)
	case key.Matches(msg, m.keys.Confirm):
		if len(p.items) == 0 {
			return nil, true
		}
		return p.apply(m, p.cursor), true
	}
	return nil, false
}

func (p *pickModal) view(m *Model) string {
	styles := m.theme.Styles()

	// Window long lists around the cursor.
	const window = 12
	start := 0
	if p.cursor >= window {
		start = p.cursor - window + 1
	}
	end := min(start+window, len(p.items))

	var b strings.Builder
	for i := start; i < end; i++ {
		item := p.items[i]
		line := "  " + item.label
		style := styles.Text
		if i == p.cursor {
			line = "> " + item.label
			style = styles.AccentText.Bold(true)
		}
		b.WriteString(style.Render(line))
		if item.hint != "" {
			b.WriteString(styles.FaintText.Render("  " + item.hint))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(p.items) > window {
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d/%d", p.cursor+1, len(p.items))))
	}
	return renderModalBox(m, p.title, b.String(), 52)
}

// columnsModal toggles column visibility.
type columnsModal struct {
	columns []string
	cursor  int
	errText string
}

func newColumnsModal(m *Model) *columnsModal {
	return &columnsModal{columns: m.logs.view.Columns()}
}

func (c *columnsModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Columns), key.Matches(msg, m.keys.Quit):
		m.logs.clampCursors()
		m.ensureColumnVisible()
		return nil, true
	case key.Matches(msg, m.keys.Down):
		if c.cursor < len(c.columns)-1 {
			c.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, m.keys.Confirm), msg.String() == " ":
		if len(c.columns) == 0 {
			return nil, true
		}
		column := c.columns[c.cursor]
		visible := m.logs.view.ColumnVisible(column)
		if visible && len(m.logs.view.VisibleColumns()) == 1 {
			c.errText = "at least one column stays visible"
			return nil, false
		}
		m.logs.view.SetColumnVisible(column, !visible)
		c.errText = ""
	}
	return nil, false
}

func (c *columnsModal) view(m *Model) string {
	styles := m.theme.Styles()
	var b strings.Builder
	for i, column := range c.columns {
		check := "[ ]"
		if m.logs.view.ColumnVisible(column) {
			check = "[x]"
		}
		line := "  " + check + " " + columnTitle(column)
		style := styles.Text
		if i == c.cursor {
			line = "> " + check + " " + columnTitle(column)
			style = styles.AccentText.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if c.errText != "" {
		b.WriteString(styles.DangerText.Render(c.errText))
	} else {
		b.WriteString(styles.FaintText.Render("space toggles, esc closes"))
	}
	return renderModalBox(m, "Columns", b.String(), 36)
}
