package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvale/gander/internal/logview"
	"github.com/calvale/gander/internal/timefmt"
)

// renderHeader draws the top bar: logo, view tabs, and the current
// service and day.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render(" gander", styles.Logo),
		bg.Spaces(2),
	}

	tabs := []struct {
		label string
		view  View
	}{
		{"Logs", ViewLogs},
		{"Settings", ViewSettings},
	}
	for _, tab := range tabs {
		style := styles.MutedText
		if tab.view == m.currentView {
			style = styles.AccentText.Bold(true)
		}
		parts = append(parts, bg.Render(tab.label, style), bg.Spaces(2))
	}

	parts = append(parts,
		bg.Render(m.service.Name, styles.Text),
		bg.Space(),
		bg.Render(m.dayLabel(), styles.MutedText),
	)
	if m.logs.autoRefresh {
		parts = append(parts, bg.Spaces(2), bg.Render("auto "+m.cfg.RefreshEvery.String(), styles.InfoText))
	}

	left := strings.Join(parts, "")
	theme := bg.Render(m.theme.Name, styles.FaintText) + bg.Space()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(theme)
	if gap < 1 {
		return bg.FillLine(left, m.width)
	}
	return left + bg.Spaces(gap) + theme
}

// renderStatusBar summarizes the table state: row counts, page, sort,
// and active filters, plus fetch progress on the right.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()

	var parts []string
	if m.currentView == ViewSettings {
		parts = append(parts,
			bg.Render("settings", styles.Text),
			bg.Render(fmt.Sprintf("%d services", len(m.services)), styles.MutedText),
		)
	} else {
		v := m.logs.view
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d/%d rows", v.FilteredCount(), v.TotalCount()), styles.Text),
			bg.Render(fmt.Sprintf("page %d/%d", v.Page()+1, max(v.PageCount(), 1)), styles.MutedText),
		)
		if column, dir := v.Sort(); dir != logview.SortNone {
			marker := "▲"
			if dir == logview.SortDesc {
				marker = "▼"
			}
			parts = append(parts, bg.Render("sort "+column+" "+marker, styles.MutedText))
		}
		if filter := v.GlobalFilter(); filter != "" {
			parts = append(parts, bg.Render("filter "+strconv.Quote(filter), styles.WarningText))
		}
		for _, column := range v.FilteredColumns() {
			parts = append(parts, bg.Render(column+"="+strconv.Quote(v.ColumnFilter(column)), styles.WarningText))
		}
	}

	left := bg.Space() + strings.Join(parts, sep)

	right := ""
	if m.currentView == ViewLogs {
		switch {
		case m.logs.fetching:
			right = bg.Render(m.spin.View()+" fetching", styles.InfoText) + bg.Space()
		case !m.logs.fetched.IsZero():
			stamp := timefmt.FormatTime(m.logs.fetched.In(timefmt.LoadZone(m.timezone)), m.timeFormat)
			right = bg.Render("fetched "+stamp, styles.FaintText) + bg.Space()
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return bg.FillLine(left, m.width)
	}
	return left + bg.Spaces(gap) + right
}

// renderBottomLine is the last row: the filter input while typing, a
// transient notice when one is showing, and key hints otherwise.
func (m Model) renderBottomLine() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	if m.currentView == ViewLogs && m.logs.filterActive {
		return bg.FillLine(" "+m.logs.filterInput.View(), m.width)
	}

	if m.notice.text != "" {
		style := styles.InfoText
		switch m.notice.kind {
		case noticeWarn:
			style = styles.WarningText
		case noticeError:
			style = styles.DangerText
		}
		return bg.FillLine(bg.Space()+bg.Render(m.notice.text, style), m.width)
	}

	hints := "j/k rows · h/l columns · / filter · s sort · enter detail · x explain · ? help"
	if m.currentView == ViewSettings {
		hints = "j/k move · enter edit · a add service · D remove · tab logs · ? help"
	}
	return bg.FillLine(bg.Space()+bg.Render(hints, styles.FaintText), m.width)
}
