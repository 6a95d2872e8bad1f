package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/logview"
	"github.com/calvale/gander/internal/viewlink"
)

// logsState holds everything specific to the logs screen.
type logsState struct {
	view *logview.State

	rowCursor int // row within the current page
	colCursor int // column within the visible set
	colOffset int // first column of the horizontal window

	filterInput  textinput.Model
	filterActive bool
	prevFilter   string

	fetching bool
	fetchSeq int
	fetchErr error
	fetched  time.Time

	autoRefresh bool
}

// clampCursors keeps the cursors inside the current page and visible
// column set after rows, filters, or columns change.
func (s *logsState) clampCursors() {
	rows := len(s.view.Rows())
	if s.rowCursor >= rows {
		s.rowCursor = rows - 1
	}
	if s.rowCursor < 0 {
		s.rowCursor = 0
	}
	cols := len(s.view.VisibleColumns())
	if s.colCursor >= cols {
		s.colCursor = cols - 1
	}
	if s.colCursor < 0 {
		s.colCursor = 0
	}
	if s.colOffset > s.colCursor {
		s.colOffset = s.colCursor
	}
	if s.colOffset < 0 {
		s.colOffset = 0
	}
}

// selectedEntry returns the entry under the cursor.
func (s *logsState) selectedEntry() (logsource.Entry, bool) {
	rows := s.view.Rows()
	if len(rows) == 0 || s.rowCursor < 0 || s.rowCursor >= len(rows) {
		return logsource.Entry{}, false
	}
	return rows[s.rowCursor], true
}

// cursorColumn returns the visible column under the cursor.
func (s *logsState) cursorColumn() (string, bool) {
	cols := s.view.VisibleColumns()
	if len(cols) == 0 {
		return "", false
	}
	if s.colCursor >= len(cols) {
		return cols[len(cols)-1], true
	}
	return cols[s.colCursor], true
}

// handleLogsKey handles keys on the logs screen.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.logs
	switch {
	case key.Matches(msg, m.keys.Down):
		if s.rowCursor < len(s.view.Rows())-1 {
			s.rowCursor++
		} else if s.view.Page() < s.view.PageCount()-1 {
			s.view.NextPage()
			s.rowCursor = 0
		}

	case key.Matches(msg, m.keys.Up):
		if s.rowCursor > 0 {
			s.rowCursor--
		} else if s.view.Page() > 0 {
			s.view.PrevPage()
			s.rowCursor = max(len(s.view.Rows())-1, 0)
		}

	case key.Matches(msg, m.keys.Left):
		if s.colCursor > 0 {
			s.colCursor--
			m.ensureColumnVisible()
		}

	case key.Matches(msg, m.keys.Right):
		if s.colCursor < len(s.view.VisibleColumns())-1 {
			s.colCursor++
			m.ensureColumnVisible()
		}

	case key.Matches(msg, m.keys.Top):
		s.rowCursor = 0

	case key.Matches(msg, m.keys.Bottom):
		s.rowCursor = max(len(s.view.Rows())-1, 0)

	case key.Matches(msg, m.keys.PrevPage):
		s.view.PrevPage()
		s.clampCursors()

	case key.Matches(msg, m.keys.NextPage):
		s.view.NextPage()
		s.clampCursors()

	case key.Matches(msg, m.keys.FirstPage):
		s.view.FirstPage()
		s.rowCursor = 0

	case key.Matches(msg, m.keys.LastPage):
		s.view.LastPage()
		s.clampCursors()

	case key.Matches(msg, m.keys.Filter):
		s.filterActive = true
		s.prevFilter = s.view.GlobalFilter()
		s.filterInput.SetValue(s.prevFilter)
		s.filterInput.CursorEnd()
		s.filterInput.Width = max(m.width-6, 20)
		cmd := s.filterInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ColumnFilter):
		if column, ok := s.cursorColumn(); ok {
			m.modal = newColumnFilterModal(&m, column)
		}

	case key.Matches(msg, m.keys.Sort):
		if column, ok := s.cursorColumn(); ok {
			s.view.CycleSort(column)
			s.clampCursors()
		}

	case key.Matches(msg, m.keys.Columns):
		m.modal = newColumnsModal(&m)

	case key.Matches(msg, m.keys.LineNumbers):
		m.showLineNumbers = !m.showLineNumbers
		m.ensureColumnVisible()
		cmd := m.persistLineNumbers()
		return m, cmd

	case key.Matches(msg, m.keys.PickDate):
		m.modal = newDateModal(&m)

	case key.Matches(msg, m.keys.PickService):
		m.modal = newServicePickModal(&m)

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.startFetch()
		return m, cmd

	case key.Matches(msg, m.keys.AutoRefresh):
		s.autoRefresh = !s.autoRefresh
		m.refreshSeq++
		if s.autoRefresh {
			cmd := tea.Batch(
				m.scheduleRefresh(),
				m.setNotice(noticeInfo, "auto refresh every "+m.cfg.RefreshEvery.String()),
			)
			return m, cmd
		}
		cmd := m.setNotice(noticeInfo, "auto refresh off")
		return m, cmd

	case key.Matches(msg, m.keys.Detail):
		if entry, ok := s.selectedEntry(); ok {
			m.modal = newDetailModal(&m, entry)
		}

	case key.Matches(msg, m.keys.Explain):
		if entry, ok := s.selectedEntry(); ok {
			cmd := m.startExplain(entry)
			return m, cmd
		}

	case key.Matches(msg, m.keys.CopyRow):
		if entry, ok := s.selectedEntry(); ok {
			text, err := logview.RowJSON(entry)
			if err != nil {
				cmd := m.setNotice(noticeError, "could not encode row")
				return m, cmd
			}
			return m, copyToClipboard("row JSON", text)
		}

	case key.Matches(msg, m.keys.CopyLink):
		view := viewlink.View{Date: m.linkDate, Service: m.service.Name}
		return m, copyToClipboard("view link", view.Link())

	case key.Matches(msg, m.keys.Escape):
		if s.view.GlobalFilter() != "" || len(s.view.FilteredColumns()) > 0 {
			s.view.ClearFilters()
			s.clampCursors()
			cmd := m.setNotice(noticeInfo, "filters cleared")
			return m, cmd
		}
	}
	return m, nil
}

// handleFilterKey routes keys while the global filter input is open.
// The filter applies on every keystroke; escape restores what was set
// before the input opened.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.logs
	switch {
	case key.Matches(msg, m.keys.Confirm):
		s.filterActive = false
		s.filterInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		s.filterActive = false
		s.filterInput.Blur()
		s.view.SetGlobalFilter(s.prevFilter)
		s.clampCursors()
		return m, nil
	}

	var cmd tea.Cmd
	s.filterInput, cmd = s.filterInput.Update(msg)
	s.view.SetGlobalFilter(s.filterInput.Value())
	s.clampCursors()
	return m, cmd
}

// persistLineNumbers saves the gutter toggle and reports the outcome.
func (m *Model) persistLineNumbers() tea.Cmd {
	if err := m.schema.ShowLineNumbers.Set(m.store, m.showLineNumbers); err != nil {
		m.log.Warn().Err(err).Msg("save showLineNumbers failed")
		return m.setNotice(noticeError, "could not save preference")
	}
	return m.setNotice(noticeInfo, "line numbers "+onOff(m.showLineNumbers))
}

// renderLogs draws the table box for the current page.
func (m Model) renderLogs() string {
	title := m.service.Name + " · " + m.dayLabel()
	content := m.renderTable()
	if m.logs.fetchErr != nil {
		content = m.renderFetchError()
	}
	return renderTitledBox(title, content, m.width, m.height-3, true, m.theme)
}

// renderFetchError fills the table box with the failure and the way
// out. The previous rows are already gone at this point; stale data
// under a fresh date header reads as current.
func (m Model) renderFetchError() string {
	styles := m.theme.Styles()
	width := max(m.width-8, 20)
	return strings.Join([]string{
		"",
		"  " + styles.DangerText.Render("could not load logs"),
		"",
		"  " + styles.MutedText.Render(truncate(m.logs.fetchErr.Error(), width)),
		"",
		"  " + styles.FaintText.Render("press r to retry, S to switch service"),
	}, "\n")
}

// newColumnFilterModal prompts for a substring filter on one column.
func newColumnFilterModal(m *Model, column string) *promptModal {
	current := m.logs.view.ColumnFilter(column)
	return newPromptModal("Filter "+columnTitle(column), "empty clears the filter", current, "substring",
		func(m *Model, value string) (tea.Cmd, error) {
			m.logs.view.SetColumnFilter(column, value)
			m.logs.clampCursors()
			return nil, nil
		})
}

// newDateModal prompts for the date to view.
func newDateModal(m *Model) *promptModal {
	return newPromptModal("Date", "an ISO day like 2026-08-21, or today", m.linkDate, viewlink.Today,
		func(m *Model, value string) (tea.Cmd, error) {
			normalized, err := normalizeDate(value)
			if err != nil {
				return nil, err
			}
			m.linkDate = normalized
			return m.startFetch(), nil
		})
}

// normalizeDate accepts an ISO calendar day or the word today.
func normalizeDate(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == viewlink.Today {
		return viewlink.Today, nil
	}
	if _, err := time.ParseInLocation(logsource.DateLayout, value, time.UTC); err != nil {
		return "", fmt.Errorf("use YYYY-MM-DD or today")
	}
	return value, nil
}

// newServicePickModal lists the configured services.
func newServicePickModal(m *Model) *pickModal {
	items := make([]pickItem, len(m.services))
	cursor := 0
	for i, svc := range m.services {
		hint := svc.Endpoint
		if hint == "" {
			hint = "sample data"
		}
		items[i] = pickItem{label: svc.Name, hint: hint}
		if svc.Name == m.service.Name {
			cursor = i
		}
	}
	return &pickModal{
		title:  "Service",
		items:  items,
		cursor: cursor,
		apply: func(m *Model, index int) tea.Cmd {
			m.service = m.services[index]
			return m.startFetch()
		},
	}
}
