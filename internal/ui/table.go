package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvale/gander/internal/logsource"
	"github.com/calvale/gander/internal/logview"
	"github.com/calvale/gander/internal/timefmt"
)

const (
	// gutterWidth is the width of the "%4d │ " line number gutter.
	gutterWidth = 7

	// colSep is the gap between columns.
	colSep = 2
)

// stampSample sizes the timestamp column: a Wednesday in September hits
// the longest day and month names every date format can produce.
var stampSample = time.Date(2026, time.September, 23, 23, 59, 59, 0, time.UTC)

// columnWidth returns the base render width for a column before the
// message column absorbs leftover space.
func columnWidth(column string, stampWidth int) int {
	switch column {
	case "id":
		return 10
	case "timestamp":
		return stampWidth
	case "level":
		return 5
	case "service":
		return 10
	case "message":
		return 40
	case "user":
		return 10
	case "component":
		return 12
	case "action":
		return 14
	case "statusCode":
		return 6
	case "requestId":
		return 12
	default:
		return 12
	}
}

// columnWidths returns the render width of each column, wide enough for
// the heading plus a sort marker.
func (m Model) columnWidths(columns []string) []int {
	stampWidth := lipgloss.Width(timefmt.FormatStamp(stampSample, m.timezone, m.dateFormat, m.timeFormat))
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = max(columnWidth(column, stampWidth), lipgloss.Width(columnTitle(column))+2)
	}
	return widths
}

// tableWidth is the horizontal room for columns inside the box.
func (m Model) tableWidth() int {
	width := m.width - 2
	if m.showLineNumbers {
		width -= gutterWidth
	}
	return max(width, 10)
}

// ensureColumnVisible scrolls the column window so the cursor column is
// on screen.
func (m *Model) ensureColumnVisible() {
	s := &m.logs
	columns := s.view.VisibleColumns()
	if len(columns) == 0 {
		s.colOffset = 0
		return
	}
	widths := m.columnWidths(columns)
	s.colOffset = columnWindowStart(widths, m.tableWidth(), s.colOffset, s.colCursor)
}

// columnWindowStart returns the first column of the window such that
// the cursor column fits in avail cells. The cursor column always
// renders, even when it alone is wider than the window.
func columnWindowStart(widths []int, avail, offset, cursor int) int {
	if len(widths) == 0 {
		return 0
	}
	cursor = min(max(cursor, 0), len(widths)-1)
	offset = min(max(offset, 0), cursor)
	for {
		end := windowEnd(widths, avail, offset)
		if cursor < end || offset == cursor {
			return offset
		}
		offset++
	}
}

// windowEnd returns the first column index past the window starting at
// offset. At least one column is always included.
func windowEnd(widths []int, avail, offset int) int {
	end := offset
	used := 0
	for end < len(widths) {
		w := widths[end]
		if end > offset {
			w += colSep
		}
		if end > offset && used+w > avail {
			break
		}
		used += w
		end++
	}
	return end
}

// renderTable draws the header row and the current page of entries.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	s := m.logs
	columns := s.view.VisibleColumns()

	if len(columns) == 0 {
		return "\n  " + styles.MutedText.Render("all columns hidden, press v")
	}

	widths := m.columnWidths(columns)
	avail := m.tableWidth()
	start := columnWindowStart(widths, avail, s.colOffset, s.colCursor)
	end := windowEnd(widths, avail, start)

	// Stretch the message column, or failing that the last visible
	// one, to fill the window.
	used := 0
	for i := start; i < end; i++ {
		used += widths[i]
		if i > start {
			used += colSep
		}
	}
	if leftover := avail - used; leftover > 0 {
		stretch := end - 1
		for i := start; i < end; i++ {
			if columns[i] == "message" {
				stretch = i
				break
			}
		}
		widths[stretch] += leftover
	}

	var b strings.Builder
	b.WriteString(m.renderTableHeader(styles, columns, widths, start, end))
	b.WriteString("\n")

	rows := s.view.Rows()
	if len(rows) == 0 {
		b.WriteString("\n  ")
		switch {
		case s.fetching:
			b.WriteString(styles.MutedText.Render("fetching..."))
		case s.view.TotalCount() > 0:
			b.WriteString(styles.MutedText.Render("no entries match the filters, esc clears them"))
		default:
			b.WriteString(styles.MutedText.Render("no entries for this day"))
		}
		return b.String()
	}

	first := s.view.Page()*s.view.PageSize() + 1
	for i, entry := range rows {
		b.WriteString(m.renderTableRow(styles, entry, columns, widths, start, end, first+i, i == s.rowCursor))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderTableHeader draws the column headings with sort and filter
// markers. The cursor column is highlighted.
func (m Model) renderTableHeader(styles Styles, columns []string, widths []int, start, end int) string {
	s := m.logs
	bg := NewBgStyle(m.theme.SurfaceAlt)
	sortColumn, sortDir := s.view.Sort()

	var parts []string
	if m.showLineNumbers {
		parts = append(parts, bg.Spaces(gutterWidth))
	}
	for i := start; i < end; i++ {
		column := columns[i]
		title := columnTitle(column)
		if s.view.ColumnFilter(column) != "" {
			title += "*"
		}
		marker := ""
		if column == sortColumn {
			switch sortDir {
			case logview.SortAsc:
				marker = " ▲"
			case logview.SortDesc:
				marker = " ▼"
			}
		}
		cell := truncate(title, widths[i]-lipgloss.Width(marker)) + marker
		style := styles.MutedText
		if i == s.colCursor {
			style = styles.AccentText.Bold(true)
		}
		parts = append(parts, bg.Render(padRight(cell, widths[i]), style))
		if i < end-1 {
			parts = append(parts, bg.Spaces(colSep))
		}
	}
	return bg.FillLine(strings.Join(parts, ""), m.width-2)
}

// renderTableRow draws one entry. The selected row swaps to the
// selection colors wholesale; per-level coloring reads badly on it.
func (m Model) renderTableRow(styles Styles, entry logsource.Entry, columns []string, widths []int, start, end, lineNo int, selected bool) string {
	rowBg := m.theme.FocusBg
	if selected {
		rowBg = m.theme.SelectionBg
	}
	bg := NewBgStyle(rowBg)

	textStyle := styles.Text
	if selected {
		textStyle = styles.Selected
	}

	var parts []string
	if m.showLineNumbers {
		parts = append(parts, bg.Render(fmt.Sprintf("%4d │ ", lineNo), styles.FaintText))
	}
	for i := start; i < end; i++ {
		column := columns[i]
		cell := padRight(truncate(m.cellValue(entry, column), widths[i]), widths[i])
		style := textStyle
		if !selected {
			switch column {
			case "level":
				style = styles.LevelStyle(logsource.NormalizeLevel(entry.Level))
			case "id", "requestId", "timestamp":
				style = styles.MutedText
			}
		}
		parts = append(parts, bg.Render(cell, style))
		if i < end-1 {
			parts = append(parts, bg.Spaces(colSep))
		}
	}
	return bg.FillLine(strings.Join(parts, ""), m.width-2)
}

// cellValue renders an entry field for the table. The timestamp honors
// the display preferences; everything else shows its raw form.
func (m Model) cellValue(entry logsource.Entry, column string) string {
	if column == "timestamp" && !entry.Timestamp.IsZero() {
		return timefmt.FormatStamp(entry.Timestamp, m.timezone, m.dateFormat, m.timeFormat)
	}
	value, _ := entry.Field(column)
	return value
}
