package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text fragments onto one shared background color.
// lipgloss resets the background at every style boundary, so bars and
// table rows assembled from differently colored pieces go through this
// to keep the row color continuous, spaces included.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle returns a BgStyle for the given background color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render draws text with the style's foreground on the shared
// background. Words are styled one at a time so the spaces between
// them carry the background and nothing else.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, word := range words {
		words[i] = styled.Render(word)
	}
	return strings.Join(words, b.space)
}

// Space returns one background-colored space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.space, n)
}

// FillLine pads content to width with background-colored spaces.
// Content already at or past the width is returned unchanged.
func (b BgStyle) FillLine(content string, width int) string {
	gap := width - lipgloss.Width(content)
	if gap <= 0 {
		return content
	}
	return content + b.Spaces(gap)
}
