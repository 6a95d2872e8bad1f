package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvale/gander/internal/prefs"
	"github.com/calvale/gander/internal/timefmt"
)

// settingsState tracks the cursor on the settings screen.
type settingsState struct {
	cursor int
}

type settingsRowKind int

const (
	rowPageSize settingsRowKind = iota
	rowLineNumbers
	rowDateFormat
	rowTimeFormat
	rowTimezone
	rowAIModel
	rowAICredential
	rowService
)

// settingsRow is one editable line on the settings screen.
type settingsRow struct {
	kind  settingsRowKind
	label string
	value string
	hint  string
	index int // service index when kind == rowService
}

// settingsRows builds the current rows: the preference block first,
// then one row per configured service.
func settingsRows(m *Model) []settingsRow {
	now := time.Now()
	rows := []settingsRow{
		{kind: rowPageSize, label: "Page size", value: strconv.Itoa(m.logs.view.PageSize()), hint: "rows per page"},
		{kind: rowLineNumbers, label: "Line numbers", value: onOff(m.showLineNumbers)},
		{kind: rowDateFormat, label: "Date format", value: m.dateFormat, hint: timefmt.FormatDate(now, m.dateFormat)},
		{kind: rowTimeFormat, label: "Time format", value: m.timeFormat, hint: timefmt.FormatTime(now, m.timeFormat)},
		{kind: rowTimezone, label: "Timezone", value: m.timezone, hint: timefmt.ZoneLabel(m.timezone)},
		{kind: rowAIModel, label: "AI model", value: m.schema.AIModel.Get(m.store)},
		{kind: rowAICredential, label: "AI credential", value: maskCredential(m.schema.AICredential.Get(m.store))},
	}
	for i, svc := range m.services {
		hint := svc.Endpoint
		if hint == "" {
			hint = "sample data"
		}
		rows = append(rows, settingsRow{kind: rowService, label: svc.Name, value: hint, index: i})
	}
	return rows
}

// maskCredential never shows the stored key, only whether one is set.
func maskCredential(credential string) string {
	if credential == "" {
		return "not set"
	}
	return strings.Repeat("•", 8)
}

// handleSettingsKey handles keys on the settings screen.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := settingsRows(&m)
	s := &m.settings
	if s.cursor >= len(rows) {
		s.cursor = len(rows) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if s.cursor < len(rows)-1 {
			s.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		s.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		s.cursor = len(rows) - 1
	case key.Matches(msg, m.keys.Confirm):
		return m.activateSettingsRow(rows[s.cursor])
	case key.Matches(msg, m.keys.Right):
		return m.cycleSettingsRow(rows[s.cursor], 1)
	case key.Matches(msg, m.keys.Left):
		return m.cycleSettingsRow(rows[s.cursor], -1)
	case key.Matches(msg, m.keys.AddService):
		m.modal = newServiceEditModal(&m, -1)
	case key.Matches(msg, m.keys.RemoveService):
		if rows[s.cursor].kind == rowService {
			return m.removeService(rows[s.cursor].index)
		}
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewLogs
	}
	return m, nil
}

// activateSettingsRow opens the editor fitting the row: a prompt, a
// picker, a toggle, or the service form.
func (m Model) activateSettingsRow(row settingsRow) (tea.Model, tea.Cmd) {
	switch row.kind {
	case rowPageSize:
		m.modal = newPageSizeModal(&m)
	case rowLineNumbers:
		m.showLineNumbers = !m.showLineNumbers
		m.ensureColumnVisible()
		cmd := m.persistLineNumbers()
		return m, cmd
	case rowDateFormat, rowTimeFormat:
		return m.cycleSettingsRow(row, 1)
	case rowTimezone:
		m.modal = newTimezoneModal(&m)
	case rowAIModel:
		m.modal = newAIModelModal(&m)
	case rowAICredential:
		m.modal = newCredentialModal(&m)
	case rowService:
		m.modal = newServiceEditModal(&m, row.index)
	}
	return m, nil
}

// cycleSettingsRow steps a date or time format through its token list,
// persisting every step.
func (m Model) cycleSettingsRow(row settingsRow, step int) (tea.Model, tea.Cmd) {
	switch row.kind {
	case rowDateFormat:
		m.dateFormat = cycleToken(timefmt.DateTokens(), m.dateFormat, step)
		cmd := m.persistString(m.schema.DateFormat, m.dateFormat, "date format")
		return m, cmd
	case rowTimeFormat:
		m.timeFormat = cycleToken(timefmt.TimeTokens(), m.timeFormat, step)
		cmd := m.persistString(m.schema.TimeFormat, m.timeFormat, "time format")
		return m, cmd
	}
	return m, nil
}

// cycleToken steps through tokens, wrapping at both ends. An unknown
// current value lands on the first token.
func cycleToken(tokens []string, current string, step int) string {
	for i, token := range tokens {
		if token == current {
			return tokens[(i+step+len(tokens))%len(tokens)]
		}
	}
	return tokens[0]
}

// persistString writes a string preference and reports the outcome.
func (m *Model) persistString(entry prefs.Entry[string], value, label string) tea.Cmd {
	if err := entry.Set(m.store, value); err != nil {
		m.log.Warn().Err(err).Str("key", entry.Key).Msg("save preference failed")
		return m.setNotice(noticeError, "could not save "+label)
	}
	return m.setNotice(noticeInfo, label+": "+value)
}

// removeService drops a service, keeping at least one so the logs
// screen always has a selection.
func (m Model) removeService(index int) (tea.Model, tea.Cmd) {
	if len(m.services) <= 1 {
		cmd := m.setNotice(noticeWarn, "keep at least one service")
		return m, cmd
	}
	name := m.services[index].Name
	m.services = prefs.RemoveService(m.services, name)
	if err := prefs.SaveServices(m.store, m.services); err != nil {
		m.log.Warn().Err(err).Msg("save services failed")
		cmd := m.setNotice(noticeError, "could not save services")
		return m, cmd
	}
	if rows := settingsRows(&m); m.settings.cursor >= len(rows) {
		m.settings.cursor = len(rows) - 1
	}
	if m.service.Name == name {
		m.service = m.services[0]
		cmd := tea.Batch(m.setNotice(noticeInfo, "removed "+name), m.startFetch())
		return m, cmd
	}
	cmd := m.setNotice(noticeInfo, "removed "+name)
	return m, cmd
}

// saveService writes the list and refetches when the edit touched the
// selected service.
func (m *Model) saveService(index int, svc prefs.Service) tea.Cmd {
	selectedName := m.service.Name
	if index >= 0 {
		if m.services[index].Name == selectedName {
			m.service = svc
		}
		m.services[index] = svc
	} else {
		m.services = append(m.services, svc)
	}
	if err := prefs.SaveServices(m.store, m.services); err != nil {
		m.log.Warn().Err(err).Msg("save services failed")
		return m.setNotice(noticeError, "could not save services")
	}
	if m.service.Name == svc.Name {
		return tea.Batch(m.setNotice(noticeInfo, "saved "+svc.Name), m.startFetch())
	}
	return m.setNotice(noticeInfo, "saved "+svc.Name)
}

// newPageSizeModal prompts for the rows shown per page.
func newPageSizeModal(m *Model) *promptModal {
	return newPromptModal("Page size", "rows per page, 1 to 500",
		strconv.Itoa(m.logs.view.PageSize()), "10",
		func(m *Model, value string) (tea.Cmd, error) {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > 500 {
				return nil, fmt.Errorf("enter a number between 1 and 500")
			}
			if err := m.schema.PageSize.Set(m.store, n); err != nil {
				return nil, fmt.Errorf("could not save page size")
			}
			m.logs.view.SetPageSize(n)
			m.logs.clampCursors()
			return m.setNotice(noticeInfo, "page size: "+strconv.Itoa(n)), nil
		})
}

// newTimezoneModal picks the display timezone from the static zone
// table.
func newTimezoneModal(m *Model) *pickModal {
	zones := timefmt.Zones()
	items := make([]pickItem, len(zones))
	cursor := 0
	for i, zone := range zones {
		items[i] = pickItem{label: zone.Label, hint: zone.Offset}
		if zone.ID == m.timezone {
			cursor = i
		}
	}
	return &pickModal{
		title:  "Timezone",
		items:  items,
		cursor: cursor,
		apply: func(m *Model, index int) tea.Cmd {
			m.timezone = zones[index].ID
			return m.persistString(m.schema.Timezone, m.timezone, "timezone")
		},
	}
}

// newAIModelModal prompts for the model used by explanations.
func newAIModelModal(m *Model) *promptModal {
	return newPromptModal("AI model", "a Claude or Gemini model name",
		m.schema.AIModel.Get(m.store), "claude-sonnet-4-20250514",
		func(m *Model, value string) (tea.Cmd, error) {
			if value == "" {
				return nil, fmt.Errorf("model name is required")
			}
			return m.persistString(m.schema.AIModel, value, "AI model"), nil
		})
}

// newCredentialModal prompts for the AI API key. Input is masked on
// screen; the store itself holds it as plain text.
func newCredentialModal(m *Model) *promptModal {
	p := newPromptModal("AI credential", "stored as plain text in the local preference store, empty clears it",
		"", "api key",
		func(m *Model, value string) (tea.Cmd, error) {
			if err := m.schema.AICredential.Set(m.store, value); err != nil {
				return nil, fmt.Errorf("could not save credential")
			}
			if value == "" {
				return m.setNotice(noticeInfo, "AI credential cleared"), nil
			}
			return m.setNotice(noticeInfo, "AI credential saved"), nil
		})
	p.input.EchoMode = textinput.EchoPassword
	p.input.EchoCharacter = '•'
	return p
}

// serviceEditModal adds or edits a service. index is -1 when adding.
type serviceEditModal struct {
	index    int
	name     textinput.Model
	endpoint textinput.Model
	focus    int
	errText  string
}

func newServiceEditModal(m *Model, index int) *serviceEditModal {
	name := textinput.New()
	name.Placeholder = "service name"
	name.CharLimit = 60
	endpoint := textinput.New()
	endpoint.Placeholder = "https://..., file://..., or empty for sample data"
	endpoint.CharLimit = 200

	s := &serviceEditModal{index: index, name: name, endpoint: endpoint}
	if index >= 0 {
		svc := m.services[index]
		s.name.SetValue(svc.Name)
		s.endpoint.SetValue(svc.Endpoint)
	}
	s.name.Focus()
	return s
}

func (s *serviceEditModal) update(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return nil, true

	case msg.String() == "tab", msg.String() == "shift+tab", msg.String() == "up", msg.String() == "down":
		if s.focus == 0 {
			s.focus = 1
			s.name.Blur()
			return s.endpoint.Focus(), false
		}
		s.focus = 0
		s.endpoint.Blur()
		return s.name.Focus(), false

	case key.Matches(msg, m.keys.Confirm):
		svc := prefs.Service{
			Name:     strings.TrimSpace(s.name.Value()),
			Endpoint: strings.TrimSpace(s.endpoint.Value()),
		}
		original := ""
		if s.index >= 0 {
			original = m.services[s.index].Name
		}
		if err := prefs.ValidateService(svc, m.services, original); err != nil {
			s.errText = err.Error()
			return nil, false
		}
		return m.saveService(s.index, svc), true
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.name, cmd = s.name.Update(msg)
	} else {
		s.endpoint, cmd = s.endpoint.Update(msg)
	}
	s.errText = ""
	return cmd, false
}

func (s *serviceEditModal) view(m *Model) string {
	styles := m.theme.Styles()
	title := "Add service"
	if s.index >= 0 {
		title = "Edit service"
	}
	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Name"))
	b.WriteString("\n")
	b.WriteString(s.name.View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Endpoint"))
	b.WriteString("\n")
	b.WriteString(s.endpoint.View())
	if s.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(s.errText))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("tab switches fields · enter saves · esc cancels"))
	return renderModalBox(m, title, b.String(), 52)
}

// renderSettings draws the preference rows and the service list.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	rows := settingsRows(&m)
	cursor := min(m.settings.cursor, len(rows)-1)

	const labelWidth = 16
	const valueWidth = 28

	lines := []string{""}
	for i, row := range rows {
		if row.kind == rowService && (i == 0 || rows[i-1].kind != rowService) {
			headerBg := NewBgStyle(m.theme.FocusBg)
			lines = append(lines, "", headerBg.Render("  Services", styles.AccentText.Bold(true)))
		}

		rowBg := NewBgStyle(m.theme.FocusBg)
		marker := "  "
		labelStyle := styles.Text
		valueStyle := styles.MutedText
		if i == cursor {
			rowBg = NewBgStyle(m.theme.SelectionBg)
			marker = "> "
			labelStyle = styles.Selected
			valueStyle = styles.Selected
		}

		line := rowBg.Render(marker+padRight(row.label, labelWidth), labelStyle) +
			rowBg.Render(padRight(truncate(row.value, valueWidth), valueWidth), valueStyle)
		if row.hint != "" {
			line += rowBg.Render(truncate(row.hint, max(m.width-2-labelWidth-valueWidth-4, 0)), styles.FaintText)
		}
		lines = append(lines, rowBg.FillLine(line, m.width-2))
	}

	return renderTitledBox("Settings", strings.Join(lines, "\n"), m.width, m.height-3, true, m.theme)
}
