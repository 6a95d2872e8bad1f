package ui

import (
	"strings"
	"unicode"
)

// truncate shortens s to max display runes, marking the cut with "...".
// Very narrow widths get a bare prefix instead of only dots.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// padRight pads s with spaces to the given rune width.
func padRight(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// columnTitle renders a field name as a column heading, splitting
// camelCase into words: "statusCode" becomes "Status". Extra fields
// from arbitrary sources go through the generic path.
func columnTitle(name string) string {
	switch name {
	case "id":
		return "ID"
	case "requestId":
		return "Request ID"
	case "statusCode":
		return "Status"
	}
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// onOff renders a boolean preference for display.
func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
