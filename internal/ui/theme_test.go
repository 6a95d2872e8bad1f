package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("dracula").Name; got != "dracula" {
		t.Fatalf("GetTheme(dracula).Name = %q, want dracula", got)
	}
	if got := GetTheme("  NightFox ").Name; got != "nightfox" {
		t.Fatalf("GetTheme with case and spaces = %q, want nightfox", got)
	}
	if got := GetTheme("no-such-theme").Name; got != "dracula" {
		t.Fatalf("GetTheme unknown = %q, want dracula fallback", got)
	}
	if got := GetTheme("").Name; got != "dracula" {
		t.Fatalf("GetTheme empty = %q, want dracula fallback", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	if len(names) == 0 {
		t.Fatal("ThemeNames() is empty")
	}
	current := names[0]
	for i := range names {
		next := NextTheme(current)
		want := names[(i+1)%len(names)]
		if next.Name != want {
			t.Fatalf("NextTheme(%q).Name = %q, want %q", current, next.Name, want)
		}
		current = next.Name
	}
	if current != names[0] {
		t.Fatalf("cycling %d times ended on %q, want %q", len(names), current, names[0])
	}
	if got := NextTheme("unknown").Name; got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemeNamesMatchRegistry(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(themes) {
		t.Fatalf("ThemeNames() has %d entries, registry has %d", len(names), len(themes))
	}
	for _, name := range names {
		theme, ok := themes[name]
		if !ok {
			t.Fatalf("ThemeNames() lists %q, not in registry", name)
		}
		if theme.Name != name {
			t.Fatalf("theme registered as %q names itself %q", name, theme.Name)
		}
	}
}

func TestThemesCoverLogLevels(t *testing.T) {
	levels := []string{"INFO", "WARN", "ERROR", "DEBUG"}
	for name, theme := range themes {
		for _, level := range levels {
			if theme.LevelColors[level] == "" {
				t.Fatalf("theme %q has no color for level %q", name, level)
			}
		}
	}
}

func TestLevelStyleFallsBack(t *testing.T) {
	styles := GetTheme("dracula").Styles()
	known := styles.LevelStyle("ERROR")
	if known.GetForeground() == styles.Text.GetForeground() {
		t.Fatal("LevelStyle(ERROR) should differ from plain text")
	}
	unknown := styles.LevelStyle("TRACE")
	if unknown.GetForeground() != styles.Text.GetForeground() {
		t.Fatal("LevelStyle of unknown level should fall back to plain text")
	}
}
