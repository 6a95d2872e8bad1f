package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/logview"
	"github.com/calvale/gander/internal/timefmt"
)

// detailLabelWidth is the label column in the detail modal.
const detailLabelWidth = 14

// detailModal shows every field of one entry, extras included.
type detailModal struct {
	entry logsource.Entry
	vp    viewport.Model
}

func newDetailModal(m *Model, entry logsource.Entry) *detailModal {
	d := &detailModal{entry: entry}
	d.fit(m)
	return d
}

// fit sizes the viewport to the terminal and rebuilds the content.
func (d *detailModal) fit(m *Model) {
	width := min(max(m.width-16, 40), 90)
	height := min(max(m.height-12, 5), 22)
	d.vp = viewport.New(width, height)
	d.vp.SetContent(d.content(m, width))
}

func (d *detailModal) content(m *Model, width int) string {
	styles := m.theme.Styles()
	valueWidth := max(width-detailLabelWidth, 20)

	var b strings.Builder
	for _, name := range d.entry.FieldNames() {
		value, ok := d.entry.Field(name)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		body := styles.Text.Width(valueWidth).Render(value)
		switch name {
		case "timestamp":
			local := timefmt.FormatStamp(d.entry.Timestamp, m.timezone, m.dateFormat, m.timeFormat)
			utc := d.entry.Timestamp.UTC().Format(time.RFC3339)
			body = styles.Text.Width(valueWidth).Render(local + "  (" + utc + " UTC)")
		case "level":
			body = styles.LevelStyle(logsource.NormalizeLevel(value)).Render(value)
		}
		label := styles.MutedText.Render(padRight(columnTitle(name), detailLabelWidth))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, body))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *detailModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Explain):
		// Swaps this modal for the explanation.
		return m.startExplain(d.entry), false
	case key.Matches(msg, m.keys.CopyRow):
		text, err := logview.RowJSON(d.entry)
		if err != nil {
			return m.setNotice(noticeError, "could not encode row"), false
		}
		return copyToClipboard("row JSON", text), false
	case key.Matches(msg, m.keys.Down):
		d.vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		d.vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		d.vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		d.vp.GotoBottom()
	}
	return nil, false
}

func (d *detailModal) view(m *Model) string {
	styles := m.theme.Styles()
	hint := styles.FaintText.Render("x explain · c copy JSON · esc close")
	content := d.vp.View() + "\n\n" + hint
	return renderModalBox(m, "Entry "+truncate(d.entry.ID, 24), content, d.vp.Width)
}

// explainModal shows the AI explanation for one entry.
type explainModal struct {
	entry   logsource.Entry
	model   string
	text    string
	pending bool
	vp      viewport.Model
}

func newExplainModal(m *Model, entry logsource.Entry) *explainModal {
	e := &explainModal{
		entry:   entry,
		model:   m.schema.AIModel.Get(m.store),
		pending: true,
	}
	e.fit(m)
	return e
}

// fit sizes the viewport to the terminal and re-wraps the text.
func (e *explainModal) fit(m *Model) {
	width := min(max(m.width-20, 40), 76)
	height := min(max(m.height-12, 5), 18)
	e.vp = viewport.New(width, height)
	e.vp.SetContent(e.body(m))
}

func (e *explainModal) body(m *Model) string {
	if e.pending {
		return ""
	}
	styles := m.theme.Styles()
	return styles.Text.Width(e.vp.Width).Render(e.text)
}

// setText swaps the pending indicator for the explanation.
func (e *explainModal) setText(m *Model, text string) {
	e.pending = false
	e.text = text
	e.vp.SetContent(e.body(m))
	e.vp.GotoTop()
}

func (e *explainModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Quit):
		if e.pending {
			// Invalidate the in-flight request so a late answer does
			// not reopen the modal.
			m.explainSeq++
			m.explaining = false
		}
		return nil, true
	case key.Matches(msg, m.keys.CopyRow):
		if !e.pending && e.text != "" {
			return copyToClipboard("explanation", e.text), false
		}
	case key.Matches(msg, m.keys.Down):
		e.vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		e.vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		e.vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		e.vp.GotoBottom()
	}
	return nil, false
}

func (e *explainModal) view(m *Model) string {
	styles := m.theme.Styles()
	title := "Explain " + truncate(e.entry.ID, 24)
	if e.pending {
		body := styles.MutedText.Render(m.spin.View() + " asking " + e.model)
		return renderModalBox(m, title, body, e.vp.Width)
	}
	hint := styles.FaintText.Render("j/k scroll · c copy · esc close")
	return renderModalBox(m, title, e.vp.View()+"\n\n"+hint, e.vp.Width)
}
