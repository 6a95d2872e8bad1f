package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a complete color scheme. Colors are hex strings so they can
// be handed to lipgloss and to BgStyle without conversion.
type Theme struct {
	Name string

	// Base surfaces, darkest to brightest.
	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	// Row selection.
	SelectionBg   string
	SelectionText string

	// Borders.
	Border      string
	BorderMuted string
	BorderFocus string

	// Text.
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Semantic colors.
	Success string
	Warning string
	Danger  string
	Info    string

	// LevelColors maps normalized log levels to their display color.
	LevelColors map[string]string
}

// Styles holds the lipgloss styles derived from a Theme. Built once per
// theme change; renders share the copies.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Logo      lipgloss.Style
	Selected  lipgloss.Style

	levelColors map[string]string
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		Surface:    lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)),
		SurfaceAlt: lipgloss.NewStyle().Background(lipgloss.Color(t.SurfaceAlt)),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
		Logo: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		levelColors: t.LevelColors,
	}
}

// LevelStyle returns the foreground style for a normalized log level.
// Unknown levels render as plain text.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	if color, ok := s.levelColors[level]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s.Text
}

var themes = map[string]Theme{
	"dracula":  draculaTheme(),
	"nightfox": nightfoxTheme(),
	"slate":    slateTheme(),
}

var themeOrder = []string{"dracula", "nightfox", "slate"}

// GetTheme returns the named theme, ignoring case, falling back to
// dracula for names it does not know.
func GetTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["dracula"]
}

// NextTheme returns the theme after the named one in cycling order.
func NextTheme(name string) Theme {
	current := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range themeOrder {
		if candidate == current {
			return themes[themeOrder[(i+1)%len(themeOrder)]]
		}
	}
	return themes[themeOrder[0]]
}

// ThemeNames lists the available themes in cycling order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func draculaTheme() Theme {
	return Theme{
		Name: "dracula",

		Background: "#21222c", // darker panel shade
		Surface:    "#282a36", // dracula background
		SurfaceAlt: "#2b2e3b",
		FocusBg:    "#343746",

		SelectionBg:   "#44475a", // dracula selection
		SelectionText: "#f8f8f2",

		Border:      "#44475a",
		BorderMuted: "#343746",
		BorderFocus: "#bd93f9", // purple

		Text:   "#f8f8f2", // foreground
		Muted:  "#6272a4", // comment
		Faint:  "#565971",
		Accent: "#bd93f9", // purple

		Success: "#50fa7b", // green
		Warning: "#f1fa8c", // yellow
		Danger:  "#ff5555", // red
		Info:    "#8be9fd", // cyan

		LevelColors: map[string]string{
			"INFO":  "#50fa7b",
			"WARN":  "#f1fa8c",
			"ERROR": "#ff5555",
			"DEBUG": "#8be9fd",
		},
	}
}

func nightfoxTheme() Theme {
	return Theme{
		Name: "nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel1
		SelectionText: "#cdcecf",

		Border:      "#39506d",
		BorderMuted: "#212e3f",
		BorderFocus: "#719cd6", // blue

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#575860",
		Accent: "#719cd6", // blue

		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		LevelColors: map[string]string{
			"INFO":  "#81b29a",
			"WARN":  "#dbc074",
			"ERROR": "#c94f6d",
			"DEBUG": "#63cdcf",
		},
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "slate",

		Background: "#0f172a", // slate-900
		Surface:    "#1e293b", // slate-800
		SurfaceAlt: "#243349",
		FocusBg:    "#334155", // slate-700

		SelectionBg:   "#475569", // slate-600
		SelectionText: "#f8fafc",

		Border:      "#475569",
		BorderMuted: "#334155",
		BorderFocus: "#38bdf8", // sky-400

		Text:   "#e2e8f0", // slate-200
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400

		Success: "#4ade80", // green-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400
		Info:    "#22d3ee", // cyan-400

		LevelColors: map[string]string{
			"INFO":  "#4ade80",
			"WARN":  "#fbbf24",
			"ERROR": "#f87171",
			"DEBUG": "#22d3ee",
		},
	}
}
