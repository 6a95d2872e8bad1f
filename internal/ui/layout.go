package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox draws content inside a single-line border with the
// title embedded in the top edge. Content lines are clipped to the box
// height and padded to its inner width on the box background.
func renderTitledBox(title, content string, width, height int, focused bool, theme Theme) string {
	if width < 4 || height < 2 {
		return ""
	}
	innerWidth := width - 2
	innerHeight := height - 2

	borderColor := theme.Border
	boxBg := theme.SurfaceAlt
	if focused {
		borderColor = theme.BorderFocus
		boxBg = theme.FocusBg
	}
	border := lipgloss.NewStyle().
		Foreground(lipgloss.Color(borderColor)).
		Background(lipgloss.Color(theme.Background))
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text)).
		Background(lipgloss.Color(theme.Background)).
		Bold(focused)

	label := " " + truncate(title, max(innerWidth-4, 0)) + " "
	labelWidth := lipgloss.Width(label)
	leftPad := max((innerWidth-labelWidth)/2, 0)
	rightPad := max(innerWidth-labelWidth-leftPad, 0)

	var b strings.Builder
	b.WriteString(border.Render("┌" + strings.Repeat("─", leftPad)))
	b.WriteString(titleStyle.Render(label))
	b.WriteString(border.Render(strings.Repeat("─", rightPad) + "┐"))
	b.WriteString("\n")

	side := border.Render("│")
	fill := lipgloss.NewStyle().
		Width(innerWidth).
		Background(lipgloss.Color(boxBg))
	lines := strings.Split(content, "\n")
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(side)
		b.WriteString(fill.Render(line))
		b.WriteString(side)
		b.WriteString("\n")
	}
	b.WriteString(border.Render("└" + strings.Repeat("─", innerWidth) + "┘"))
	return b.String()
}
